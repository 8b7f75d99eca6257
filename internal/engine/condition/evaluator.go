package condition

import (
	"path"
	"regexp"
	"strings"

	"github.com/lacc97/libloot/internal/adapters/fs"
	"github.com/lacc97/libloot/internal/core/domain"
	"github.com/lacc97/libloot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// hostExecutableName is the literal file() / active() path LOOT itself is
// matched against: it always exists and is never active (§4.3).
const hostExecutableName = "LOOT"

// Evaluator parses and evaluates conditions against one game's cache,
// load-order handler and filesystem (C3, §4.3). It is safe for concurrent
// use: every atom evaluation either reads through the thread-safe
// PluginCache or computes a pure function of its inputs.
type Evaluator struct {
	cache    ports.PluginCache
	loadOrder ports.LoadOrderHandler
	fsys      ports.Filesystem
	dataPath  string

	// dirListGroup deduplicates concurrent directory scans for the same
	// directory, so regex/many conditions evaluated at the same time
	// against one directory share a single listing (§9 DOMAIN STACK:
	// singleflight). Calls that do not overlap each list the directory.
	dirListGroup singleflight.Group
}

// New returns an Evaluator. cache and loadOrder may be nil, in which case
// the evaluator runs in "parse-only mode" (§4.3): conditions are parsed for
// syntax but every atom evaluates false, except the empty condition which
// is always true.
func New(cache ports.PluginCache, loadOrder ports.LoadOrderHandler, fsys ports.Filesystem, dataPath string) *Evaluator {
	return &Evaluator{cache: cache, loadOrder: loadOrder, fsys: fsys, dataPath: dataPath}
}

func (e *Evaluator) parseOnly() bool {
	return e.cache == nil || e.loadOrder == nil
}

// Evaluate parses and evaluates condition, using and populating the game
// cache's condition cache (§4.3 "result is cached... keyed by the exact
// input string"). An empty condition is always true, even in parse-only
// mode.
func (e *Evaluator) Evaluate(condition string) (bool, error) {
	expr, err := Parse(condition)
	if err != nil {
		return false, err
	}

	if strings.TrimSpace(condition) == "" {
		return true, nil
	}

	if e.parseOnly() {
		return false, nil
	}

	if cached, ok := e.cache.CachedCondition(condition); ok {
		return cached, nil
	}

	result, err := e.evalExpr(expr)
	if err != nil {
		return false, err
	}

	e.cache.CacheCondition(condition, result)
	return result, nil
}

// EvaluateCleaningData implements the CRC-match half of dirty/clean
// filtering (§4.3): a cleaning record survives only if the plugin's actual
// CRC equals the record's declared CRC. It never consults the condition
// cache, since it is not a parsed condition string.
func (e *Evaluator) EvaluateCleaningData(data domain.CleaningData, pluginName string) bool {
	if e.parseOnly() || pluginName == "" {
		return false
	}
	crc, ok := e.cache.CachedCRC(pluginName)
	return ok && crc == data.CRC
}

func (e *Evaluator) evalExpr(expr *Expr) (bool, error) {
	for _, term := range expr.Terms {
		result, err := e.evalTerm(&term)
		if err != nil {
			return false, err
		}
		if result {
			return true, nil
		}
	}
	return len(expr.Terms) == 0, nil
}

func (e *Evaluator) evalTerm(term *Term) (bool, error) {
	for _, factor := range term.Factors {
		result, err := e.evalFactor(&factor)
		if err != nil {
			return false, err
		}
		if !result {
			return false, nil
		}
	}
	return true, nil
}

func (e *Evaluator) evalFactor(factor *Factor) (bool, error) {
	var result bool
	var err error
	if factor.Sub != nil {
		result, err = e.evalExpr(factor.Sub)
	} else {
		result, err = e.evalAtom(factor.Atom)
	}
	if err != nil {
		return false, err
	}
	if factor.Negate {
		return !result, nil
	}
	return result, nil
}

func (e *Evaluator) evalAtom(atom *Atom) (bool, error) {
	switch atom.Kind {
	case AtomFile:
		return e.evalFile(atom.Path)
	case AtomActive:
		return e.evalActive(atom.Path), nil
	case AtomMany:
		return e.evalManyFiles(atom.Regex, 2)
	case AtomRegex:
		return e.evalManyFiles(atom.Regex, 1)
	case AtomManyActive:
		return e.evalManyActive(atom.Regex)
	case AtomChecksum:
		return e.evalChecksum(atom.Path, atom.Hex)
	case AtomVersion:
		return e.evalVersion(atom.Path, atom.Version, atom.Comparator)
	default:
		return false, zerr.With(domain.ErrConditionSyntax, "reason", "unknown atom kind")
	}
}

func (e *Evaluator) evalFile(p string) (bool, error) {
	if p == hostExecutableName {
		return true, nil
	}
	if err := fs.ValidateDataRelativePath(p); err != nil {
		return false, err
	}
	if _, ok := e.cache.Plugin(p); ok {
		return true, nil
	}
	full := path.Join(e.dataPath, p)
	resolved := fs.ResolvePluginPath(e.fsys, full)
	return e.fsys.Exists(resolved), nil
}

func (e *Evaluator) evalActive(p string) bool {
	if p == hostExecutableName {
		return false
	}
	return e.loadOrder.IsPluginActive(p)
}

// splitRegex splits a condition regex string into its literal parent
// directory and its filename regex component: only the filename may
// contain regex syntax (§4.3).
func splitRegex(pattern string) (dir, filenamePattern string) {
	idx := strings.LastIndex(pattern, "/")
	if idx < 0 {
		return "", pattern
	}
	return pattern[:idx], pattern[idx+1:]
}

func (e *Evaluator) compileRegex(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, zerr.With(zerr.With(zerr.With(domain.ErrConditionSyntax, "reason", "invalid regex"), "pattern", pattern), "cause", err.Error())
	}
	return re, nil
}

func (e *Evaluator) listDataDir(dir string) ([]string, error) {
	full := path.Join(e.dataPath, dir)
	v, err, _ := e.dirListGroup.Do(full, func() (any, error) {
		return e.fsys.DirectoryIterator(full)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (e *Evaluator) evalManyFiles(pattern string, threshold int) (bool, error) {
	dir, filenamePattern := splitRegex(pattern)
	if err := fs.ValidateDataRelativePath(dir); err != nil {
		return false, err
	}
	re, err := e.compileRegex(filenamePattern)
	if err != nil {
		return false, err
	}

	full := path.Join(e.dataPath, dir)
	if !e.fsys.IsDirectory(full) {
		return false, nil
	}
	names, err := e.listDataDir(dir)
	if err != nil {
		return false, nil //nolint:nilerr // an unreadable directory simply matches nothing
	}

	count := 0
	for _, name := range names {
		if re.MatchString(name) {
			count++
			if count >= threshold {
				return true, nil
			}
		}
	}
	return false, nil
}

func (e *Evaluator) evalManyActive(pattern string) (bool, error) {
	_, filenamePattern := splitRegex(pattern)
	re, err := e.compileRegex(filenamePattern)
	if err != nil {
		return false, err
	}

	count := 0
	for h := range e.cache.Plugins() {
		if re.MatchString(h.Name()) && e.loadOrder.IsPluginActive(h.Name()) {
			count++
			if count >= 2 {
				return true, nil
			}
		}
	}
	return false, nil
}

func (e *Evaluator) evalChecksum(p string, want uint32) (bool, error) {
	if err := fs.ValidateDataRelativePath(p); err != nil {
		return false, err
	}
	if crc, ok := e.cache.CachedCRC(p); ok {
		return crc == want, nil
	}

	full := path.Join(e.dataPath, p)
	resolved := fs.ResolvePluginPath(e.fsys, full)
	if !e.fsys.Exists(resolved) {
		return false, nil
	}
	crc, err := fs.CRC32(resolved)
	if err != nil {
		return false, nil //nolint:nilerr // unreadable file simply fails the checksum match
	}
	e.cache.CacheCRC(p, crc)
	return crc == want, nil
}

func (e *Evaluator) evalVersion(p, want string, cmp Comparator) (bool, error) {
	if err := fs.ValidateDataRelativePath(p); err != nil {
		return false, err
	}

	wantVersion := parseVersion(want)

	var result int
	if handle, ok := e.cache.Plugin(p); ok {
		if v, has := handle.Version(); has {
			result = compareVersions(parseVersion(v), wantVersion)
			return evalComparator(cmp, result), nil
		}
	}

	full := path.Join(e.dataPath, p)
	if !e.fsys.Exists(fs.ResolvePluginPath(e.fsys, full)) {
		// §4.3: file absent behaves as though its version is less than
		// the compared version, for every comparator.
		return evalComparator(cmp, -1), nil
	}

	// File exists but has no introspectable version (e.g. not a
	// recognised plugin): treat it as version "0", consistent with
	// compareVersions' zero-fill for missing fields.
	result = compareVersions(nil, wantVersion)
	return evalComparator(cmp, result), nil
}
