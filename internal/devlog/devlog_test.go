package devlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidLogType(t *testing.T) {
	for _, lt := range []LogType{TypeMilestone, TypeFeature, TypeBugFix, TypeOptimization, TypeLearning} {
		assert.True(t, ValidLogType(lt), "type %q", lt)
	}

	assert.False(t, ValidLogType("bugfix"))
	assert.False(t, ValidLogType("refactor"))
	assert.False(t, ValidLogType(""))
}
