// Package config implements trk's persisted configuration model.
//
// Two kinds of configuration document exist: the global document at
// <ConfigHome>/trk/config.yml and a per-project document at .trk.yml in the
// repository root. Both are ordered key-value [Document] values, read and
// written through a [Store]. The [Settings] type is a typed Viper-backed
// view of the global document for commands that only read values.
package config
