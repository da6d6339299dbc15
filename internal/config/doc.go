// Package config loads forge.json, the optional project configuration read
// by the forge command.
//
// A missing file is not an error: Load returns the defaults. Values found
// in the file override the defaults field by field, and command line flags
// override both.
//
//	{
//	  "render":  {"host": "html", "pretty": true},
//	  "preview": {"port": 4000},
//	  "publish": {"bucket": "my-site", "prefix": "pages/", "region": "eu-west-1"},
//	  "log":     {"level": "debug"}
//	}
package config
