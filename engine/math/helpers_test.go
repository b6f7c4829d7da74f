package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testEpsilon float32 = 0.0001

func assertVec3(t *testing.T, expected, actual Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Truef(t, expected.IsEqual(actual, testEpsilon), "expected %+v, got %+v %v", expected, actual, msgAndArgs)
}

func assertMat3(t *testing.T, expected, actual Mat3) {
	t.Helper()
	assert.Truef(t, expected.IsEqual(actual, testEpsilon), "expected %v, got %v", expected.Data, actual.Data)
}

func assertMat4(t *testing.T, expected, actual Mat4) {
	t.Helper()
	assert.Truef(t, expected.IsEqual(actual, testEpsilon), "expected %v, got %v", expected.Data, actual.Data)
}

func assertRotation(t *testing.T, expected, actual Quaternion) {
	t.Helper()
	assert.Truef(t, expected.IsEqualRotation(actual, testEpsilon), "expected %+v, got %+v", expected, actual)
}
