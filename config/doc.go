// Package config loads buildlog settings with viper.
//
// Values come from defaults, an optional buildlog.yaml (in . or
// ./configs, or an explicit file), BUILDLOG_* environment variables and
// any flags bound to the viper instance. A .env file is loaded into the
// environment first without overriding variables that are already set.
//
//	logger:
//	  level: info
//	  failLevel: warn
//	  showLogName: true
//	styles:
//	  warning: bold,magenta
package config
