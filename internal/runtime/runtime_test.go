package runtime

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryHelperNameIsDefined(t *testing.T) {
	for name := range helperNames {
		assert.True(t, strings.Contains(Code, "export let "+name+" "),
			"helper %q is not defined by the runtime code", name)
		assert.True(t, IsHelperName(name))
	}
	assert.False(t, IsHelperName("__superDelete"))
}
