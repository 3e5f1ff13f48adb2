// Package profile writes runtime profiles of a streamguard command.
//
// Profiles are useful to inspect the cost of scanning large files or of a
// long-running watch. Register the flags on the root command, start a
// [Session] before the command runs and stop it afterwards:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//
//	session, err := cfg.Start(fs)
//	...
//	err = session.Stop()
//
// Users then enable profiling with flags like --cpu-profile=cpu.prof.
package profile
