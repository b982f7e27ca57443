// Package config holds the validated settings of the key store, the cipher, the logger
// and the two API servers, and loads server configuration from YAML through viper.
package config
