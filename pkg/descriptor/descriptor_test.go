package descriptor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJavaClassNames(t *testing.T) {
	c := JavaClass("com.acme.ejb.AccountHome")

	assert.Equal(t, "AccountHome", c.ClassName())
	assert.Equal(t, "com.acme.ejb", c.Package())
	assert.Equal(t, JavaClass("com.acme.ejb.ejb_home_AccountHome"), c.Prefixed("ejb_home_"))
	assert.Equal(t, JavaClass("com.acme.ejb.AccountHome_Stub"), c.Suffixed("_Stub"))
}

func TestJavaClassDefaultPackage(t *testing.T) {
	c := JavaClass("AccountHome")

	assert.Equal(t, "AccountHome", c.ClassName())
	assert.Equal(t, "", c.Package())
	assert.Equal(t, JavaClass("ejb_fac_AccountHome"), c.Prefixed("ejb_fac_"))
}

func TestJavaClassFile(t *testing.T) {
	c := JavaClass("com.acme.ejb.AccountHome")

	want := filepath.Join("build", "com", "acme", "ejb", "AccountHome.class")
	assert.Equal(t, want, c.ClassFile("build"))

	assert.Equal(t, filepath.Join("build", "Account.class"), JavaClass("Account").ClassFile("build"))
}

func TestGeneratedClasses(t *testing.T) {
	ejb := &EjbInfo{
		Name:           "Account",
		Home:           "com.acme.AccountHome",
		Remote:         "com.acme.Account",
		Implementation: "com.acme.AccountEJB",
		BeanType:       BeanTypeSession,
	}

	assert.Equal(t, []JavaClass{
		"com.acme.ejb_fac_AccountHome",
		"com.acme.ejb_home_AccountHome",
		"com.acme.ejb_skel_AccountEJB",
	}, ejb.GeneratedClasses())
}

func TestGeneratedClassesIiop(t *testing.T) {
	ejb := &EjbInfo{
		Name:           "Account",
		Home:           "com.acme.AccountHome",
		Remote:         "com.acme.Account",
		Implementation: "com.acme.AccountEJB",
		BeanType:       BeanTypeSession,
		Iiop:           true,
	}

	assert.Equal(t, []JavaClass{
		"com.acme.ejb_fac_AccountHome",
		"com.acme.ejb_home_AccountHome",
		"com.acme.ejb_skel_AccountEJB",
		"com.acme._AccountHome_Stub",
		"com.acme._Account_Stub",
		"com.acme._AccountEJB_Tie",
	}, ejb.GeneratedClasses())
}

func TestSourceClasses(t *testing.T) {
	ejb := &EjbInfo{
		Home:           "com.acme.AccountHome",
		Remote:         "com.acme.Account",
		Implementation: "com.acme.AccountEJB",
	}

	assert.Equal(t, []JavaClass{
		"com.acme.AccountHome",
		"com.acme.Account",
		"com.acme.AccountEJB",
	}, ejb.SourceClasses())
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "True", "yes", "1", " true "} {
		v, err := parseBool(s)
		assert.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"", "false", "no", "0"} {
		v, err := parseBool(s)
		assert.NoError(t, err)
		assert.False(t, v, s)
	}

	_, err := parseBool("maybe")
	assert.Error(t, err)
}
