package vos

// VDir tracks the working directory of the shell process.
type VDir interface {
	// Getwd returns a rooted path name corresponding to the current directory.
	Getwd() (dir string, err error)

	// Chdir changes the current working directory to the named directory.
	Chdir(dir string) error
}

// VOS provides the slice of the operating system the shell touches: the
// working directory, environment, standard streams, filesystem and process
// creation.
type VOS interface {
	VEnv
	VIO
	VProc
	VFS
	VDir
}
