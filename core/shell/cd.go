package shell

import (
	"github.com/josephlewis42/catfish/core/vos"
)

const (
	// HomeArg changes to the home directory.
	HomeArg = "~"
	// PreviousArg changes to the previous directory.
	PreviousArg = "-"
)

// DirState is the working directory of the shell and the one it was in before
// the last successful cd.
type DirState struct {
	Current  string
	Previous string
}

// NewDirState starts with both directories set to the working directory of
// virtualOS.
func NewDirState(virtualOS vos.VDir) (DirState, error) {
	wd, err := virtualOS.Getwd()
	if err != nil {
		return DirState{}, err
	}
	return DirState{Current: wd, Previous: wd}, nil
}

// ChangeDir runs the cd builtin with the arguments following "cd" and returns
// the state to carry forward. On error the working directory of virtualOS is
// untouched and state is returned as is.
//
// With no arguments the target is always home. Otherwise the first argument
// decides:
//
//	same directory as the current one, or "~" while at home: back to Previous
//	"~": home
//	"-": back to Previous
//	anything else: the target itself
func ChangeDir(virtualOS vos.VOS, state DirState, args []string) (DirState, error) {
	cur, err := virtualOS.Getwd()
	if err != nil {
		cur = state.Current
	}
	home, homeErr := virtualOS.UserHomeDir()

	var dest string
	var target string
	if len(args) > 0 {
		target = args[0]
	}

	switch {
	case len(args) == 0:
		if homeErr != nil {
			return state, homeErr
		}
		dest = home
	case vos.SameDir(virtualOS, target, cur), target == HomeArg && homeErr == nil && vos.SameDir(virtualOS, home, cur):
		dest = state.Previous
	case target == HomeArg:
		if homeErr != nil {
			return state, homeErr
		}
		dest = home
	case target == PreviousArg:
		dest = state.Previous
	default:
		dest = target
	}

	if err := virtualOS.Chdir(dest); err != nil {
		return state, err
	}

	wd, err := virtualOS.Getwd()
	if err != nil {
		wd = dest
	}
	return DirState{Current: wd, Previous: cur}, nil
}
