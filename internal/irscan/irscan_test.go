// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package irscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/extract-main-proc/pkg/types"
)

// sampleIR resembles what the code generator emits for a small program.
const sampleIR = `; ModuleID = 'program'
source_filename = "program"

@fmt = private unnamed_addr constant [4 x i8] c"%d\0A\00", align 1

declare void @Put_Line(ptr)

declare i32 @printf(ptr, ...)

define void @New_Line() {
entry:
  ret void
}

define void @Hello_World() {
entry:
  call void @Put_Line(ptr @fmt)
  ret void
}

define i32 @Square(i32 %x) {
entry:
  %0 = mul i32 %x, %x
  ret i32 %0
}
`

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{
			name:   "single user procedure",
			src:    "define void @Foo()",
			want:   "Foo",
			wantOK: true,
		},
		{
			name: "builtin only",
			src:  "define void @Put_Line()",
		},
		{
			name: "leading underscore never matches",
			src:  "define void @_Hidden()",
		},
		{
			name:   "first non-builtin wins",
			src:    "define void @Put() {\n}\ndefine void @MainProc() {\n}\n",
			want:   "MainProc",
			wantOK: true,
		},
		{
			name:   "order preserved among user procedures",
			src:    "define void @Alpha()\ndefine void @Beta()\n",
			want:   "Alpha",
			wantOK: true,
		},
		{
			name:   "whitespace between tokens",
			src:    "define\tvoid   @Spaced(  )",
			want:   "Spaced",
			wantOK: true,
		},
		{
			name: "lowercase names are not candidates",
			src:  "define void @main()",
		},
		{
			name: "procedures with parameters are skipped",
			src:  "define void @Print_Value(i32 %v)",
		},
		{
			name: "non-void definitions are skipped",
			src:  "define i32 @Compute()",
		},
		{
			name: "empty input",
			src:  "",
		},
		{
			name:   "realistic module",
			src:    sampleIR,
			want:   "Hello_World",
			wantOK: true,
		},
	}

	e := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Find(tt.src)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFind_AllBuiltinsExcluded(t *testing.T) {
	e := New()
	var src string
	for _, name := range builtins {
		src += "define void @" + name + "()\n"
	}
	_, ok := e.Find(src)
	assert.False(t, ok)
}

func TestNew_ExtraExclusions(t *testing.T) {
	e := New("Setup", "  ", "")
	got, ok := e.Find("define void @Setup()\ndefine void @Program()\n")
	require.True(t, ok)
	assert.Equal(t, "Program", got)

	// Extras add to the fixed list.
	excluded, reason := e.IsExcluded("Put_Line")
	assert.True(t, excluded)
	assert.Equal(t, types.ExcludedBuiltin, reason)

	excluded, _ = e.IsExcluded("")
	assert.False(t, excluded, "blank extras must not be registered")
}

func TestScan(t *testing.T) {
	got := New().Scan(sampleIR)
	want := []types.Candidate{
		{Name: "New_Line", Line: 10, Excluded: true, Reason: types.ExcludedBuiltin},
		{Name: "Hello_World", Line: 15},
	}
	assert.Equal(t, want, got)
}

func TestScan_NoMatches(t *testing.T) {
	assert.Empty(t, New().Scan("declare void @Put_Line(ptr)\n"))
}

func TestIsExcluded_Underscore(t *testing.T) {
	excluded, reason := New().IsExcluded("_Init")
	assert.True(t, excluded)
	assert.Equal(t, types.ExcludedUnderscore, reason)
}

func TestNew_ExtrasDoNotLeak(t *testing.T) {
	New("Setup")

	got, ok := New().Find("define void @Setup()")
	require.True(t, ok)
	assert.Equal(t, "Setup", got)
}

func TestCompileFlag(t *testing.T) {
	name, ok := New().Find("define void @X()")
	require.True(t, ok)
	assert.Equal(t, "-DMAIN_PROCEDURE_NAME=X", CompileFlag(types.DefaultMacroName, name))
	assert.Equal(t, "-DENTRY=Main_Proc", CompileFlag("ENTRY", "Main_Proc"))
}
