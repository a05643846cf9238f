package corpus

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// DefaultReutersPattern matches the Reuters-21578 distribution files.
const DefaultReutersPattern = "reut2-0*.sgm"

// ReutersDir reads Reuters-21578 SGML files from a directory.
type ReutersDir struct {
	Path    string
	Pattern string
}

func (r ReutersDir) Documents(ctx context.Context) ([]Document, error) {
	pattern := r.Pattern
	if pattern == "" {
		pattern = DefaultReutersPattern
	}
	files, err := filepath.Glob(filepath.Join(r.Path, pattern))
	if err != nil {
		return nil, fmt.Errorf("corpus: glob %s: %w", r.Path, err)
	}
	sort.Strings(files)

	var docs []Document
	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		part, err := readReutersFile(name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, part...)
	}
	return docs, nil
}

func readReutersFile(name string) ([]Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", name, err)
	}
	defer f.Close()
	docs, err := ParseReuters(charmap.ISO8859_1.NewDecoder().Reader(f))
	if err != nil {
		return nil, fmt.Errorf("corpus: parse %s: %w", name, err)
	}
	return docs, nil
}

// ParseReuters extracts every <REUTERS> article from an SGML stream. Articles
// without TITLE and BODY are still returned; Document.Text reports them.
func ParseReuters(r io.Reader) ([]Document, error) {
	z := html.NewTokenizer(r)

	var (
		docs              []Document
		cur               *Document
		title, body       strings.Builder
		inTitle, inBody   bool
		hasTitle, hasBody bool
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return docs, nil
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "reuters":
				cur = &Document{}
				title.Reset()
				body.Reset()
				hasTitle, hasBody = false, false
				for hasAttr {
					var key, val []byte
					key, val, hasAttr = z.TagAttr()
					if string(key) == "newid" {
						cur.ID = string(val)
					}
				}
			case "title":
				inTitle = cur != nil
				hasTitle = hasTitle || inTitle
			case "body":
				inBody = cur != nil
				hasBody = hasBody || inBody
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "reuters":
				if cur == nil {
					continue
				}
				if hasTitle {
					s := title.String()
					cur.Title = &s
				}
				if hasBody {
					s := body.String()
					cur.Body = &s
				}
				docs = append(docs, *cur)
				cur = nil
			case "title":
				inTitle = false
			case "body":
				inBody = false
			}
		case html.TextToken:
			switch {
			case inTitle:
				title.Write(z.Text())
			case inBody:
				body.Write(z.Text())
			}
		}
	}
}
