package descriptor

import (
	"path/filepath"
	"strings"
)

// A JavaClass is the fully qualified name of a Java class. e.g., "com.acme.ejb.AccountHome".
type JavaClass string

// ClassName returns the simple name of the class, without the package.
func (c JavaClass) ClassName() string {
	s := string(c)
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Package returns the package portion of the class name, or "" for the
// default package.
func (c JavaClass) Package() string {
	s := string(c)
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[:i]
	}
	return ""
}

// Prefixed returns the class in the same package whose simple name is the
// receiver's simple name with the given prefix. ejbc names its generated
// factory, home and skeleton classes this way.
func (c JavaClass) Prefixed(prefix string) JavaClass {
	if pkg := c.Package(); pkg != "" {
		return JavaClass(pkg + "." + prefix + c.ClassName())
	}
	return JavaClass(prefix + c.ClassName())
}

// Suffixed returns the class with the given suffix appended to its simple
// name.
func (c JavaClass) Suffixed(suffix string) JavaClass {
	return JavaClass(string(c) + suffix)
}

// ClassFile returns the path of the compiled class file below base,
// following the usual package-per-directory layout.
func (c JavaClass) ClassFile(base string) string {
	elems := []string{base}
	if pkg := c.Package(); pkg != "" {
		elems = append(elems, strings.Split(pkg, ".")...)
	}
	elems = append(elems, c.ClassName()+".class")
	return filepath.Join(elems...)
}

// Bean types found in the standard descriptor.
const (
	BeanTypeSession = "session"
	BeanTypeEntity  = "entity"
)

// Session types found in the standard descriptor.
const (
	SessionTypeStateless = "Stateless"
	SessionTypeStateful  = "Stateful"
)

// EjbInfo describes a single enterprise bean, merged from the standard EJB
// 1.1 descriptor and the iAS-specific descriptor.
type EjbInfo struct {
	Name           string    // ejb-name, the key joining the two descriptors
	Home           JavaClass // home interface
	Remote         JavaClass // remote interface
	Implementation JavaClass // ejb-class
	BeanType       string    // BeanTypeSession or BeanTypeEntity
	SessionType    string    // SessionTypeStateless or SessionTypeStateful, session beans only
	PrimaryKey     JavaClass // prim-key-class, entity beans only
	CmpFields      []string  // cmp-field names, entity beans only

	// iAS-specific attributes.
	Iiop     bool // generate RMI/IIOP stubs and ties
	Failover bool // session failover required
}

// SourceClasses returns the three compiled classes that must exist before
// stubs and skeletons can be generated.
func (e *EjbInfo) SourceClasses() []JavaClass {
	return []JavaClass{e.Home, e.Remote, e.Implementation}
}

// GeneratedClasses returns the classes ejbc produces for this bean. When any
// of these is missing or out of date the bean must be recompiled.
func (e *EjbInfo) GeneratedClasses() []JavaClass {
	classes := []JavaClass{
		e.Home.Prefixed("ejb_fac_"),
		e.Home.Prefixed("ejb_home_"),
		e.Implementation.Prefixed("ejb_skel_"),
	}
	if e.Iiop {
		classes = append(classes,
			e.Home.Prefixed("_").Suffixed("_Stub"),
			e.Remote.Prefixed("_").Suffixed("_Stub"),
			e.Implementation.Prefixed("_").Suffixed("_Tie"),
		)
	}
	return classes
}
