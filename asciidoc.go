package pelican

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// asciidocBinaries lists engine binaries in preference order.
var asciidocBinaries = []string{"asciidoctor", "asciidoc"}

// asciidocAvailable is the feature probe for the AsciiDoc reader.
func asciidocAvailable() bool {
	return firstOnPath(asciidocBinaries...) != ""
}

// Header line patterns. Per-line precedence is field > author > revision >
// title > blank-line termination.
var (
	asciidocFieldPattern    = regexp.MustCompile(`^:(.+?): (.+)$`)
	asciidocAuthorPattern   = regexp.MustCompile(`^(\S.*?) <(\S+?)>$`)
	asciidocRevisionPattern = regexp.MustCompile(`^(?:(.+?),)? *(.+?): *(.+?)$`)
)

// asciiDocReader scans the raw source for header metadata and renders the
// body through an external AsciiDoc engine.
type asciiDocReader struct {
	baseReader
	runner commandRunner
	binary string
}

func newAsciiDocReader(settings Settings) *asciiDocReader {
	return &asciiDocReader{
		baseReader: newBaseReader(settings),
		runner:     execRunner{},
		binary:     firstOnPath(asciidocBinaries...),
	}
}

// Read scans metadata from the source file, then invokes the engine with
// header and footer suppressed and syntax highlighting enabled. Engine
// errors surface unmodified together with the engine's stderr.
func (r *asciiDocReader) Read(ctx context.Context, path string) (string, Metadata, error) {
	if r.binary == "" {
		return "", nil, fmt.Errorf("%w: asciidoc", ErrEngineNotFound)
	}

	metadata, err := r.scanMetadata(path)
	if err != nil {
		return "", nil, err
	}

	args := []string{"--no-header-footer", "--backend", "html5", "--attribute", "source-highlighter=pygments"}
	if conf := r.settings.String("ASCIIDOC_CONF"); conf != "" && filepath.Base(r.binary) == "asciidoc" {
		args = append(args, "--conf-file", conf)
	}
	args = append(args, "--out-file", "-", path)

	stdout, stderr, err := r.runner.Run(ctx, r.binary, args...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", ErrEngineFailed, strings.TrimSpace(stderr), err)
	}

	return stdout, metadata, nil
}

// scanMetadata performs the line-oriented header scan on the raw source,
// independent of the rendered output. The first unclassified non-blank line
// becomes the title; the first blank line after any header line ends the
// scan, so the document body is never inspected.
func (r *asciiDocReader) scanMetadata(path string) (Metadata, error) {
	f, err := os.Open(path) // #nosec G304 -- content path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	defer f.Close()

	metadata := Metadata{}
	titleFound := false
	headerSeen := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")

		if strings.TrimSpace(line) == "" {
			if headerSeen {
				return metadata, nil
			}
			continue
		}
		headerSeen = true

		switch {
		case asciidocFieldPattern.MatchString(line):
			groups := asciidocFieldPattern.FindStringSubmatch(line)
			name := strings.ToLower(groups[1])
			value, err := r.processMetadata(name, groups[2])
			if err != nil {
				return nil, err
			}
			metadata[name] = value
			if name == "revdate" {
				date, err := r.processMetadata("date", groups[2])
				if err != nil {
					return nil, err
				}
				metadata["date"] = date
			}

		case asciidocAuthorPattern.MatchString(line):
			groups := asciidocAuthorPattern.FindStringSubmatch(line)
			author, err := r.processMetadata("author", groups[1])
			if err != nil {
				return nil, err
			}
			email, err := r.processMetadata("email", groups[2])
			if err != nil {
				return nil, err
			}
			metadata["author"] = author
			metadata["email"] = email

		case asciidocRevisionPattern.MatchString(line):
			groups := asciidocRevisionPattern.FindStringSubmatch(line)
			date, err := r.processMetadata("date", groups[2])
			if err != nil {
				return nil, err
			}
			metadata["revdate"] = groups[2]
			metadata["date"] = date
			metadata["revnumber"] = groups[1]
			metadata["revremark"] = groups[3]

		case !titleFound:
			metadata["title"] = line
			titleFound = true
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}
	return metadata, nil
}
