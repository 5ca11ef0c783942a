package curator

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Element and attribute names consumed from page documents.
const (
	tagVideo         = "video"
	tagAudio         = "audio"
	tagImage         = "image"
	tagForeignObject = "foreignObject"
	tagTeacherGuide  = "teacherGuide"
	tagMedia         = "media"

	attrHref         = "xlink:href"
	attrType         = "ub:type"
	attrSrc          = "ub:src"
	attrRelativePath = "relativePath"

	// typeText marks foreign objects that never own an asset file.
	typeText = "text"
)

// elementKind is the closed set of top-level elements the scanner dispatches on.
type elementKind int

const (
	elementOther elementKind = iota
	elementMedia
	elementForeignObject
	elementTeacherGuide
)

func kindOf(tag string) elementKind {
	switch tag {
	case tagVideo, tagAudio, tagImage:
		return elementMedia
	case tagForeignObject:
		return elementForeignObject
	case tagTeacherGuide:
		return elementTeacherGuide
	default:
		return elementOther
	}
}

var errNoRoot = errors.New("document has no root element")

// listDocuments returns the page documents directly under dir, sorted by name.
// Documents matching a trash pattern are never read.
func (c *Curator) listDocuments(log *zap.Logger, dir string) []string {
	entries, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		log.Warn("Failed to list documents", zap.Error(err))
		return nil
	}

	var docs []string
	for _, e := range entries {
		if e.IsDir() || matchAny(c.cfg.TrashPatterns, e.Name()) {
			continue
		}
		if matchAny([]string{c.cfg.DocumentPattern}, e.Name()) {
			docs = append(docs, filepath.Join(dir, e.Name()))
		}
	}
	return docs
}

// scanReferences collects the identifiers referenced by every document of dir.
// Documents are merged in name order; a duplicated identifier keeps the last path.
func (c *Curator) scanReferences(log *zap.Logger, dir string) (refs ReferenceMap, documents, failures int) {
	refs = make(ReferenceMap)
	for _, doc := range c.listDocuments(log, dir) {
		documents++
		if err := c.collectDocument(log, doc, refs); err != nil {
			failures++
			log.Warn("Failed to parse document, ignoring its references",
				zap.String("document", doc), zap.Error(err))
		}
	}
	return refs, documents, failures
}

// collectDocument parses one document and records its references into refs.
// Nothing is recorded when the document cannot be parsed.
func (c *Curator) collectDocument(log *zap.Logger, path string, refs ReferenceMap) error {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return errNoRoot
	}

	found := make(ReferenceMap)
	for _, el := range root.ChildElements() {
		switch kindOf(el.FullTag()) {
		case elementMedia:
			found.record(el.SelectAttrValue(attrHref, ""))
		case elementForeignObject:
			if el.SelectAttrValue(attrType, "") == typeText {
				continue
			}
			found.record(el.SelectAttrValue(attrSrc, ""))
		case elementTeacherGuide:
			for _, media := range el.SelectElements(tagMedia) {
				if attr := media.SelectAttr(attrRelativePath); attr != nil {
					found.record(attr.Value)
				}
			}
		}
	}

	for id, p := range found {
		if prev, ok := refs[id]; ok && prev != p {
			log.Debug("Reference overwritten by later document",
				zap.String("id", id), zap.String("previous", prev), zap.String("path", p),
				zap.String("document", path))
		}
		refs[id] = p
	}
	return nil
}

// record stores path under its identifier. Paths without one are dropped.
func (m ReferenceMap) record(path string) {
	if id, ok := ExtractIdentifier(path); ok {
		m[id] = path
	}
}
