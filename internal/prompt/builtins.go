package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/pathprompt/internal/pathutil"
)

// StatFS is the filesystem access the built-in validators need.
type StatFS interface {
	Stat(path string) (os.FileInfo, error)
}

// BuiltinValidator returns the named validator. cwd is the question's working directory.
//
//	exists      the path must exist
//	not_exists  the path must not exist
//	within_cwd  the path must be cwd or below it
//	directory   the path must be an existing directory
//	file        the path must be an existing regular file
func BuiltinValidator(name, cwd string, fs StatFS) (Validator, error) {
	switch name {
	case "exists":
		return func(_ context.Context, path string, _ Answers, _ []string) error {
			if _, err := fs.Stat(path); err != nil {
				return fmt.Errorf("%s does not exist", path)
			}
			return nil
		}, nil
	case "not_exists":
		return func(_ context.Context, path string, _ Answers, _ []string) error {
			if _, err := fs.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("cannot check %s: %v", path, err)
			}
			return nil
		}, nil
	case "within_cwd":
		return func(_ context.Context, path string, _ Answers, _ []string) error {
			rel := pathutil.Rel(cwd, path)
			if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				return fmt.Errorf("%s is outside %s", path, cwd)
			}
			return nil
		}, nil
	case "directory":
		return func(_ context.Context, path string, _ Answers, _ []string) error {
			info, err := fs.Stat(path)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("%s is not a directory", path)
			}
			return nil
		}, nil
	case "file":
		return func(_ context.Context, path string, _ Answers, _ []string) error {
			info, err := fs.Stat(path)
			if err != nil || !info.Mode().IsRegular() {
				return fmt.Errorf("%s is not a file", path)
			}
			return nil
		}, nil
	}
	return nil, &UnknownBuiltinError{Kind: "validator", Name: name}
}

// ChainValidators runs validators in order and returns the first rejection.
func ChainValidators(validators ...Validator) Validator {
	return func(ctx context.Context, path string, answers Answers, paths []string) error {
		for _, v := range validators {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := v(ctx, path, answers, paths); err != nil {
				return err
			}
		}
		return nil
	}
}

// BuiltinFilter returns the named filter. Filters apply to a single path or to
// every element of a path list.
//
//	relative  path relative to cwd
//	slash     forward slashes
//	base      final path element
func BuiltinFilter(name, cwd string) (Filter, error) {
	var f func(string) string
	switch name {
	case "relative":
		f = func(p string) string { return pathutil.Rel(cwd, p) }
	case "slash":
		f = filepath.ToSlash
	case "base":
		f = filepath.Base
	default:
		return nil, &UnknownBuiltinError{Kind: "filter", Name: name}
	}
	return mapPaths(f), nil
}

func mapPaths(f func(string) string) Filter {
	return func(_ context.Context, value any) (any, error) {
		switch v := value.(type) {
		case string:
			return f(v), nil
		case []string:
			out := make([]string, len(v))
			for i, p := range v {
				out[i] = f(p)
			}
			return out, nil
		default:
			return nil, fmt.Errorf("cannot filter %T", value)
		}
	}
}
