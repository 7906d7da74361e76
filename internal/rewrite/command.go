// Package rewrite linearizes a decorated commit graph into a Script —
// an ordered command sequence plus a tree of dependent scripts — and
// executes that script against a repository.
package rewrite

import (
	"fmt"

	"go.abhg.dev/stack/internal/git"
)

// Op is the tagged variant of a single Script command.
type Op int

const (
	SwitchCommit Op = iota
	SwitchMark
	RegisterMark
	CherryPick
	CreateBranch
	DeleteBranch
)

func (op Op) String() string {
	switch op {
	case SwitchCommit:
		return "switch-commit"
	case SwitchMark:
		return "switch-mark"
	case RegisterMark:
		return "register-mark"
	case CherryPick:
		return "cherry-pick"
	case CreateBranch:
		return "create-branch"
	case DeleteBranch:
		return "delete-branch"
	default:
		return "unknown"
	}
}

// Command is a single primitive repository operation. Oid is set for
// SwitchCommit, SwitchMark, RegisterMark, and CherryPick; Name is set
// for CreateBranch and DeleteBranch.
type Command struct {
	Op   Op
	Oid  git.Oid
	Name string
}

func (c Command) String() string {
	if c.Name != "" {
		return fmt.Sprintf("%s(%s)", c.Op, c.Name)
	}
	return fmt.Sprintf("%s(%s)", c.Op, c.Oid.Short())
}

func switchCommitCmd(oid git.Oid) Command   { return Command{Op: SwitchCommit, Oid: oid} }
func switchMarkCmd(oid git.Oid) Command     { return Command{Op: SwitchMark, Oid: oid} }
func registerMarkCmd(oid git.Oid) Command   { return Command{Op: RegisterMark, Oid: oid} }
func cherryPickCmd(oid git.Oid) Command     { return Command{Op: CherryPick, Oid: oid} }
func createBranchCmd(name string) Command   { return Command{Op: CreateBranch, Name: name} }
func deleteBranchCmd(name string) Command   { return Command{Op: DeleteBranch, Name: name} }

// Script is a sequence of commands plus an ordered list of dependent
// scripts, one per divergence in the originating graph.
type Script struct {
	Commands   []Command
	Dependents []*Script
}
