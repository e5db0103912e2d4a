package diagram

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"orthoroute/geom"
)

var validate = validator.New()

// Document is the on-disk form of a diagram.
type Document struct {
	Nodes []NodeDoc `yaml:"nodes" validate:"required,min=1,dive"`
	Edges []EdgeDoc `yaml:"edges" validate:"omitempty,dive"`
}

type NodeDoc struct {
	ID string `yaml:"id" validate:"required,max=100"`
	X  int    `yaml:"x"`
	Y  int    `yaml:"y"`
	W  int    `yaml:"w" validate:"gt=0"`
	H  int    `yaml:"h" validate:"gt=0"`
}

type EdgeDoc struct {
	ID     string    `yaml:"id,omitempty" validate:"omitempty,max=100"`
	From   string    `yaml:"from" validate:"required"`
	To     string    `yaml:"to" validate:"required"`
	Kind   string    `yaml:"kind" validate:"required"`
	Labels LabelsDoc `yaml:"labels,omitempty"`
}

type LabelsDoc struct {
	Start  string `yaml:"start,omitempty" validate:"max=200"`
	Middle string `yaml:"middle,omitempty" validate:"max=200"`
	End    string `yaml:"end,omitempty" validate:"max=200"`
}

// LoadFile reads a YAML diagram document from path.
func LoadFile(path string) (*Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load decodes, validates and builds a diagram. Edges without an id receive a
// random UUID.
func Load(r io.Reader) (*Diagram, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return doc.Build()
}

// Build validates the document and converts it into a Diagram.
func (doc *Document) Build() (*Diagram, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, formatValidationError(err)
	}

	d := New()
	for _, n := range doc.Nodes {
		if _, err := d.AddNode(n.ID, geom.R(n.X, n.Y, n.W, n.H)); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		kind, err := ParseKind(e.Kind)
		if err != nil {
			return nil, err
		}
		id := e.ID
		if id == "" {
			id = uuid.NewString()
		}
		labels := Labels{Start: e.Labels.Start, Middle: e.Labels.Middle, End: e.Labels.End}
		if _, err := d.Connect(id, e.From, e.To, kind, labels); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Encode writes d back out as a YAML document.
func Encode(w io.Writer, d *Diagram) error {
	doc := Document{}
	for _, n := range d.Nodes() {
		b := n.Bounds
		doc.Nodes = append(doc.Nodes, NodeDoc{ID: n.ID, X: b.X, Y: b.Y, W: b.W, H: b.H})
	}
	for _, e := range d.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{
			ID:     e.ID,
			From:   e.Start.ID,
			To:     e.End.ID,
			Kind:   e.Kind.String(),
			Labels: LabelsDoc{Start: e.Labels.Start, Middle: e.Labels.Middle, End: e.Labels.End},
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: is required", fe.Namespace()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s: must be greater than %s", fe.Namespace(), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: must have at least %s entries", fe.Namespace(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s: exceeds maximum length of %s", fe.Namespace(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
