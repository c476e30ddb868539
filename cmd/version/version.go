package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/tendermint/tendermint/version"
)

const (
	FMT_VERSTR = "v%v.%v.%v-%x"
)

var (
	// it is changed using ldflags.
	//  ex) -ldflags "... -X 'github.com/beatoz/fxmath/cmd/version.GitCommit=$(XXX)'"
	Version   string
	GitCommit string

	majorVer  uint64 = 0
	minorVer  uint64 = 1
	patchVer  uint64 = 0
	commitVer uint64 = 0
)

// Info is the machine readable form of the version.
type Info struct {
	Version    string `json:"version"`
	Major      uint64 `json:"major"`
	Minor      uint64 `json:"minor"`
	Patch      uint64 `json:"patch"`
	CommitHash string `json:"commit_hash"`
	TMLibs     string `json:"tm_libs"`
}

func init() {
	if err := parseVersions(Version, GitCommit); err != nil {
		panic(err)
	}
}

var verRegexp = regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)`)

func parseVersions(versionStr, gitCommit string) error {
	if versionStr != "" {
		matches := verRegexp.FindStringSubmatch(versionStr)
		if matches == nil {
			return fmt.Errorf("invalid version string: %v", versionStr)
		}
		majorVer, _ = strconv.ParseUint(matches[1], 10, 64)
		minorVer, _ = strconv.ParseUint(matches[2], 10, 64)
		patchVer, _ = strconv.ParseUint(matches[3], 10, 64)
	}

	if gitCommit != "" {
		c, err := strconv.ParseUint(gitCommit, 16, 64)
		if err != nil {
			return fmt.Errorf("error: %v, invalid git commit: %v", err, gitCommit)
		}
		commitVer = c
	}
	return nil
}

func String() string {
	return fmt.Sprintf(FMT_VERSTR, majorVer, minorVer, patchVer, commitVer)
}

func Get() Info {
	return Info{
		Version:    String(),
		Major:      majorVer,
		Minor:      minorVer,
		Patch:      patchVer,
		CommitHash: strconv.FormatUint(commitVer, 16),
		TMLibs:     version.TMCoreSemVer,
	}
}
