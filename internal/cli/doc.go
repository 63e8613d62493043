// Package cli parses the tutor command line: a command (serve or mcp)
// followed by flags that override the configuration file.
package cli
