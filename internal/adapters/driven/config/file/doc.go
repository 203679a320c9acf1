// Package file stores aaltjes settings in ~/.aaltjes/config.toml.
package file
