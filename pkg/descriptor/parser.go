package descriptor

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Public identifiers of the DTDs the parser accepts. A descriptor carrying a
// DOCTYPE with any other public ID is rejected before decoding.
var knownPublicIDs = []string{
	"-//Sun Microsystems, Inc.//DTD Enterprise JavaBeans 1.0//EN",
	"-//Sun Microsystems, Inc.//DTD Enterprise JavaBeans 1.1//EN",
	"-//Sun Microsystems, Inc.//DTD iAS Enterprise JavaBeans 1.0//EN",
}

// ParseError reports a malformed or invalid descriptor. It wraps the
// underlying decoding error so callers can distinguish parse failures from
// plain I/O failures.
type ParseError struct {
	Name string // descriptor file name
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("descriptor %s: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parser reads the two EJB deployment descriptors. It is strict: unexpected
// root elements, unknown DOCTYPE public IDs and ill-formed markup are all
// errors. A single Parser may be reused for any number of descriptors.
type Parser struct {
	publicIDs []string
}

// NewParser returns a validating descriptor parser.
func NewParser() (*Parser, error) {
	return &Parser{publicIDs: knownPublicIDs}, nil
}

// ParseEjbJar reads a standard EJB 1.1 deployment descriptor (ejb-jar.xml)
// and returns the beans it declares, keyed by ejb-name.
func (p *Parser) ParseEjbJar(r io.Reader, name string) (map[string]*EjbInfo, error) {
	var doc ejbJarXML
	if err := p.decode(r, name, "ejb-jar", &doc); err != nil {
		return nil, err
	}

	ejbs := make(map[string]*EjbInfo)

	for _, s := range doc.EnterpriseBeans.Sessions {
		if err := checkBean(name, s.EjbName, s.Home, s.Remote, s.EjbClass); err != nil {
			return nil, err
		}
		if _, ok := ejbs[s.EjbName]; ok {
			return nil, &ParseError{Name: name, Err: fmt.Errorf("duplicate ejb-name %q", s.EjbName)}
		}
		ejbs[s.EjbName] = &EjbInfo{
			Name:           s.EjbName,
			Home:           JavaClass(s.Home),
			Remote:         JavaClass(s.Remote),
			Implementation: JavaClass(s.EjbClass),
			BeanType:       BeanTypeSession,
			SessionType:    s.SessionType,
		}
	}

	for _, e := range doc.EnterpriseBeans.Entities {
		if err := checkBean(name, e.EjbName, e.Home, e.Remote, e.EjbClass); err != nil {
			return nil, err
		}
		if _, ok := ejbs[e.EjbName]; ok {
			return nil, &ParseError{Name: name, Err: fmt.Errorf("duplicate ejb-name %q", e.EjbName)}
		}
		ejbs[e.EjbName] = &EjbInfo{
			Name:           e.EjbName,
			Home:           JavaClass(e.Home),
			Remote:         JavaClass(e.Remote),
			Implementation: JavaClass(e.EjbClass),
			BeanType:       BeanTypeEntity,
			PrimaryKey:     JavaClass(e.PrimKeyClass),
			CmpFields:      e.CmpFields,
		}
	}

	if len(ejbs) == 0 {
		return nil, &ParseError{Name: name, Err: fmt.Errorf("no enterprise beans declared")}
	}

	return ejbs, nil
}

// ParseIasDescriptor reads the iAS-specific descriptor (ias-ejb-jar.xml) and
// overlays its attributes onto the beans from the standard descriptor. Every
// bean named in the iAS descriptor must exist in ejbs, and every bean in ejbs
// must be covered by the iAS descriptor.
func (p *Parser) ParseIasDescriptor(r io.Reader, name string, ejbs map[string]*EjbInfo) error {
	var doc iasEjbJarXML
	if err := p.decode(r, name, "ias-ejb-jar", &doc); err != nil {
		return err
	}

	covered := make(map[string]bool, len(ejbs))

	for _, b := range doc.EnterpriseBeans.all() {
		ejb, ok := ejbs[b.EjbName]
		if !ok {
			return &ParseError{
				Name: name,
				Err:  fmt.Errorf("bean %q is not declared in the standard descriptor", b.EjbName),
			}
		}

		iiop, err := parseBool(b.Iiop)
		if err != nil {
			return &ParseError{Name: name, Err: fmt.Errorf("bean %q: bad iiop value: %w", b.EjbName, err)}
		}
		failover, err := parseBool(b.FailoverRequired)
		if err != nil {
			return &ParseError{Name: name, Err: fmt.Errorf("bean %q: bad failover-required value: %w", b.EjbName, err)}
		}

		ejb.Iiop = iiop
		ejb.Failover = failover
		covered[b.EjbName] = true
	}

	for ejbName := range ejbs {
		if !covered[ejbName] {
			return &ParseError{
				Name: name,
				Err:  fmt.Errorf("bean %q has no entry in the iAS descriptor", ejbName),
			}
		}
	}

	return nil
}

// decode scans the document, validates the DOCTYPE public ID if one is
// present, checks the root element and unmarshals it into v.
func (p *Parser) decode(r io.Reader, name, root string, v interface{}) error {
	dec := xml.NewDecoder(r)
	dec.Strict = true

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return &ParseError{Name: name, Err: fmt.Errorf("no <%s> root element", root)}
		}
		if err != nil {
			return &ParseError{Name: name, Err: err}
		}

		switch t := tok.(type) {
		case xml.Directive:
			if err := p.checkDoctype(string(t)); err != nil {
				return &ParseError{Name: name, Err: err}
			}
		case xml.StartElement:
			if t.Name.Local != root {
				return &ParseError{
					Name: name,
					Err:  fmt.Errorf("unexpected root element <%s>, want <%s>", t.Name.Local, root),
				}
			}
			if err := dec.DecodeElement(v, &t); err != nil {
				return &ParseError{Name: name, Err: err}
			}
			return nil
		}
	}
}

// checkDoctype validates the public ID of a DOCTYPE directive against the
// known DTDs. Directives without a public ID (internal subsets, comments)
// pass through.
func (p *Parser) checkDoctype(directive string) error {
	if !strings.HasPrefix(directive, "DOCTYPE") {
		return nil
	}
	if !strings.Contains(directive, "PUBLIC") {
		return nil
	}
	for _, id := range p.publicIDs {
		if strings.Contains(directive, id) {
			return nil
		}
	}
	return fmt.Errorf("unrecognized DOCTYPE public ID in %q", directive)
}

func checkBean(name, ejbName, home, remote, ejbClass string) error {
	switch {
	case ejbName == "":
		return &ParseError{Name: name, Err: fmt.Errorf("bean is missing <ejb-name>")}
	case home == "":
		return &ParseError{Name: name, Err: fmt.Errorf("bean %q is missing <home>", ejbName)}
	case remote == "":
		return &ParseError{Name: name, Err: fmt.Errorf("bean %q is missing <remote>", ejbName)}
	case ejbClass == "":
		return &ParseError{Name: name, Err: fmt.Errorf("bean %q is missing <ejb-class>", ejbName)}
	}
	return nil
}

// XML shapes of the two descriptors. Only the elements ejbc needs are mapped;
// everything else in the documents is ignored.

type ejbJarXML struct {
	XMLName         xml.Name `xml:"ejb-jar"`
	EnterpriseBeans struct {
		Sessions []sessionXML `xml:"session"`
		Entities []entityXML  `xml:"entity"`
	} `xml:"enterprise-beans"`
}

type sessionXML struct {
	EjbName     string `xml:"ejb-name"`
	Home        string `xml:"home"`
	Remote      string `xml:"remote"`
	EjbClass    string `xml:"ejb-class"`
	SessionType string `xml:"session-type"`
}

type entityXML struct {
	EjbName      string   `xml:"ejb-name"`
	Home         string   `xml:"home"`
	Remote       string   `xml:"remote"`
	EjbClass     string   `xml:"ejb-class"`
	PrimKeyClass string   `xml:"prim-key-class"`
	CmpFields    []string `xml:"cmp-field>field-name"`
}

type iasEjbJarXML struct {
	XMLName         xml.Name           `xml:"ias-ejb-jar"`
	EnterpriseBeans iasEnterpriseBeans `xml:"enterprise-beans"`
}

type iasEnterpriseBeans struct {
	Sessions []iasBeanXML `xml:"session"`
	Entities []iasBeanXML `xml:"entity"`
}

func (b iasEnterpriseBeans) all() []iasBeanXML {
	beans := make([]iasBeanXML, 0, len(b.Sessions)+len(b.Entities))
	beans = append(beans, b.Sessions...)
	beans = append(beans, b.Entities...)
	return beans
}

type iasBeanXML struct {
	EjbName          string `xml:"ejb-name"`
	Iiop             string `xml:"iiop"`
	FailoverRequired string `xml:"failover-required"`
}
