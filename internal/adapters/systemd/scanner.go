// Package systemd finds enabled service-unit links and checks whether they still resolve.
package systemd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/pacaudit/internal/core/domain"
	"go.trai.ch/pacaudit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ServiceLinkScanner = (*Scanner)(nil)

// targetPattern matches the per-target wants/requires directories.
const targetPattern = "*.target.*"

// maxHops bounds link chains, matching the kernel's symlink limit.
const maxHops = 40

// Scanner implements ports.ServiceLinkScanner.
type Scanner struct {
	resolver ports.PathResolver
}

// NewScanner creates a new Scanner.
func NewScanner(resolver ports.PathResolver) *Scanner {
	return &Scanner{resolver: resolver}
}

// EnabledLinks returns the symlink entries inside every target directory under dirs.
// Target directories that cannot be read are skipped.
func (s *Scanner) EnabledLinks(dirs []string) ([]string, error) {
	var links []string
	for _, dir := range dirs {
		targets, err := s.resolver.Glob(filepath.Join(dir, targetPattern))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list unit target directories"), "dir", dir)
		}

		for _, target := range targets {
			entries, err := os.ReadDir(target)
			if err != nil {
				continue
			}
			for _, entry := range entries {
				if entry.Type()&fs.ModeSymlink != 0 {
					links = append(links, filepath.Join(target, entry.Name()))
				}
			}
		}
	}
	return links, nil
}

// IsBroken follows link hop by hop. The link is broken when the chain ends at
// a missing path or loops. Reaching a regular file means it is valid; any
// other file type is reported as an error.
func (s *Scanner) IsBroken(link string) (bool, error) {
	current := link
	for range maxHops {
		target, err := os.Readlink(current)
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to read link"), "link", current)
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}

		info, err := os.Lstat(target)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return true, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat link target"), "target", target)
		}

		switch mode := info.Mode(); {
		case mode.IsRegular():
			return false, nil
		case mode&fs.ModeSymlink != 0:
			current = target
		default:
			return false, zerr.With(zerr.Wrap(domain.ErrUnexpectedLinkTarget, "link chain ends at a special file"), "target", target)
		}
	}
	return true, nil
}
