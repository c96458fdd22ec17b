// Package config holds the runtime configuration for corpuscan.
//
// Configuration comes from three layers, later layers winning:
//  1. Built-in defaults (NewConfig)
//  2. An optional .corpuscan YAML file found in the current directory or
//     the user's home directory (LoadConfigFile / FindConfigFile)
//  3. CLI flags, applied by the command layer
//
// The Config struct is passed through the application via dependency
// injection rather than global state. Validate is called once after flag
// parsing so every stage can assume a sane configuration.
package config
