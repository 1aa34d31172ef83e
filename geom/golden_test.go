package geom

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type goldenMatrix [4][4]Element

// columns as written in the file
func (g goldenMatrix) Matrix4() Matrix4 {
	var m Matrix4
	for c := 0; c < 4; c++ {
		copy(m[c*4:], g[c][:])
	}
	return m
}

type goldenFile struct {
	ViewRotation []struct {
		Name   string       `yaml:"name"`
		Eye    [3]Element   `yaml:"eye"`
		Target [3]Element   `yaml:"target"`
		Up     [3]Element   `yaml:"up"`
		YPR    [3]Element   `yaml:"ypr"`
		Want   goldenMatrix `yaml:"want"`
	} `yaml:"view_rotation"`
	Perspective []struct {
		FovY   Element      `yaml:"fovy"`
		Aspect Element      `yaml:"aspect"`
		Near   Element      `yaml:"near"`
		Far    Element      `yaml:"far"`
		Want   goldenMatrix `yaml:"want"`
	} `yaml:"perspective"`
}

func loadGolden(t *testing.T) *goldenFile {
	t.Helper()
	data, err := os.ReadFile("testdata/golden.yaml")
	require.NoError(t, err)
	var g goldenFile
	require.NoError(t, yaml.Unmarshal(data, &g))
	return &g
}

func TestGolden_ViewRotation(t *testing.T) {
	g := loadGolden(t)
	require.NotEmpty(t, g.ViewRotation)

	for _, c := range g.ViewRotation {
		view := NewLookAtMatrix4(NewVector3FromArray(c.Eye), NewVector3FromArray(c.Target), NewVector3FromArray(c.Up))
		rot := NewYawPitchRollMatrix4(c.YPR[0], c.YPR[1], c.YPR[2])
		m := view.Mul(rot).Mul(NewMatrix4())

		assert.True(t, m.Equals(c.Want.Matrix4()), "%s: got %v", c.Name, m)
	}
}

func TestGolden_Perspective(t *testing.T) {
	g := loadGolden(t)
	require.NotEmpty(t, g.Perspective)

	for _, c := range g.Perspective {
		m, err := NewPerspectiveMatrix4(c.FovY, c.Aspect, c.Near, c.Far)
		require.NoError(t, err)
		assert.True(t, m.Equals(c.Want.Matrix4()), "got %v", m)
	}
}
