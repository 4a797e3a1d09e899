// Package paths centralizes file system path resolution for the trk CLI.
//
// It resolves XDG base directories via [github.com/adrg/xdg] and knows the
// locations of the global and per-project configuration files:
//
//   - global: <ConfigHome>/trk/config.yml
//   - project: <projectRoot>/.trk.yml
package paths
