package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Signature holds authorship information for a commit.
type Signature struct {
	Name  string
	Email string
	Time  time.Time
}

// Commit is a single commit in the repository's history.
type Commit struct {
	Oid       Oid
	ParentOid []Oid
	TreeOid   Oid
	Author    Signature
	Committer Signature
	Message   string
}

// Summary returns the first line of the commit message.
func (c Commit) Summary() string {
	line, _, _ := strings.Cut(c.Message, "\n")
	return line
}

// wipPrefixes are the leading tokens that mark a commit as work in
// progress or a fixup/squash target for another commit.
var wipPrefixes = []string{"WIP", "wip", "fixup!", "squash!"}

// WipSummary returns the commit's summary and true if the summary
// begins with a WIP marker: a leading "WIP"/"wip" token, or a
// "fixup!"/"squash!" prefix identifying the target of a later pass.
func (c Commit) WipSummary() (string, bool) {
	summary := c.Summary()
	for _, prefix := range wipPrefixes {
		if rest, ok := strings.CutPrefix(summary, prefix); ok {
			if rest == "" || rest[0] == ' ' || rest[0] == ':' {
				return summary, true
			}
		}
	}
	return "", false
}

// FixupTarget returns the summary of the commit this one is a fixup or
// squash for, and true, if the commit's summary carries a "fixup!" or
// "squash!" prefix.
func (c Commit) FixupTarget() (string, bool) {
	summary := c.Summary()
	for _, prefix := range []string{"fixup! ", "squash! "} {
		if target, ok := strings.CutPrefix(summary, prefix); ok {
			return target, true
		}
	}
	return "", false
}

const (
	_fieldSep  = "\x01"
	_commitSep = "\x00"
)

var _logFormat = strings.Join([]string{
	"%H", "%P", "%T", "%an", "%ae", "%at", "%cn", "%ce", "%ct", "%B",
}, _fieldSep) + _commitSep

func parseCommits(raw string) ([]Commit, error) {
	records := strings.Split(raw, _commitSep)
	commits := make([]Commit, 0, len(records))
	for _, rec := range records {
		rec = strings.TrimPrefix(rec, "\n")
		if strings.TrimSpace(rec) == "" {
			continue
		}

		fields := strings.SplitN(rec, _fieldSep, 10)
		if len(fields) != 10 {
			return nil, fmt.Errorf("malformed commit record: %q", rec)
		}

		authorTime, err := parseUnix(fields[5])
		if err != nil {
			return nil, fmt.Errorf("parse author time: %w", err)
		}
		committerTime, err := parseUnix(fields[8])
		if err != nil {
			return nil, fmt.Errorf("parse committer time: %w", err)
		}

		var parents []Oid
		if p := strings.TrimSpace(fields[1]); p != "" {
			for _, s := range strings.Fields(p) {
				parents = append(parents, Oid(s))
			}
		}

		commits = append(commits, Commit{
			Oid:       Oid(fields[0]),
			ParentOid: parents,
			TreeOid:   Oid(fields[2]),
			Author:    Signature{Name: fields[3], Email: fields[4], Time: authorTime},
			Committer: Signature{Name: fields[6], Email: fields[7], Time: committerTime},
			Message:   strings.TrimSuffix(fields[9], "\n"),
		})
	}
	return commits, nil
}

func parseUnix(s string) (time.Time, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0), nil
}

// HeadCommit returns the commit at HEAD.
func (r *Repository) HeadCommit(ctx context.Context) (Commit, error) {
	return r.FindCommit(ctx, "HEAD")
}

// FindCommit looks up a single commit by any commit-ish: a full oid, an
// abbreviation, or a ref name.
func (r *Repository) FindCommit(ctx context.Context, oid Oid) (Commit, error) {
	out, err := r.gitCmd(ctx, "log", "-1", "--format="+_logFormat, string(oid), "--").
		OutputString(r.exec)
	if err != nil {
		return Commit{}, fmt.Errorf("%w: %s", ErrNotExist, oid)
	}

	commits, err := parseCommits(out)
	if err != nil {
		return Commit{}, IOError("parse commit", err)
	}
	if len(commits) == 0 {
		return Commit{}, fmt.Errorf("%w: %s", ErrNotExist, oid)
	}
	return commits[0], nil
}

// CommitRange returns the commits in (baseExcl, headIncl], oldest
// first, in topological order.
func (r *Repository) CommitRange(ctx context.Context, baseExcl, headIncl Oid) ([]Commit, error) {
	rangeArg := string(baseExcl) + ".." + string(headIncl)
	out, err := r.gitCmd(ctx, "log",
		"--topo-order", "--reverse",
		"--format="+_logFormat, rangeArg, "--",
	).OutputString(r.exec)
	if err != nil {
		return nil, IOError("git log "+rangeArg, err)
	}
	return parseCommits(out)
}
