package validation_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"board/dto"
	"board/errs"
	"board/models"
	"board/validation"
)

func violatedFields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, errs.KindValidation, errs.KindOf(err))
	var names []string
	for _, f := range errs.FieldsOf(err) {
		names = append(names, f.Field)
	}
	return names
}

func TestStruct_PostRequest(t *testing.T) {
	testCases := []struct {
		name       string
		req        dto.PostRequest
		wantFields []string
	}{
		{
			name: "valid",
			req:  dto.PostRequest{Title: "test", Content: "testContent", UserID: 1},
		},
		{
			name: "title of 99 characters",
			req:  dto.PostRequest{Title: strings.Repeat("t", 99), Content: "c", UserID: 1},
		},
		{
			name: "multibyte title of 99 characters",
			req:  dto.PostRequest{Title: strings.Repeat("가", 99), Content: "c", UserID: 1},
		},
		{
			name:       "title of 100 characters",
			req:        dto.PostRequest{Title: strings.Repeat("t", 100), Content: "c", UserID: 1},
			wantFields: []string{"title"},
		},
		{
			name:       "title of 101 characters",
			req:        dto.PostRequest{Title: strings.Repeat("t", 101), Content: "c", UserID: 1},
			wantFields: []string{"title"},
		},
		{
			name:       "empty title",
			req:        dto.PostRequest{Content: "c", UserID: 1},
			wantFields: []string{"title"},
		},
		{
			name:       "blank content",
			req:        dto.PostRequest{Title: "t", Content: "   ", UserID: 1},
			wantFields: []string{"content"},
		},
		{
			name:       "zero user id",
			req:        dto.PostRequest{Title: "t", Content: "c"},
			wantFields: []string{"userId"},
		},
		{
			name:       "negative user id",
			req:        dto.PostRequest{Title: "t", Content: "c", UserID: -1},
			wantFields: []string{"userId"},
		},
		{
			name:       "every field invalid",
			req:        dto.PostRequest{Title: strings.Repeat("t", 120), UserID: -1},
			wantFields: []string{"title", "content", "userId"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := validation.Struct(testCase.req)
			if testCase.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, testCase.wantFields, violatedFields(t, err))
		})
	}
}

func TestStruct_UserRequest(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.UserRequest{Name: "kim", Email: "kim@example.com"}))

	fields := violatedFields(t, validation.Struct(dto.UserRequest{Name: " ", Email: "not-an-email"}))
	assert.ElementsMatch(t, []string{"name", "email"}, fields)
}

func TestStruct_PageRequest(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.PageRequest{Page: 0, Size: 20}))

	fields := violatedFields(t, validation.Struct(dto.PageRequest{Page: -1, Size: 0}))
	assert.ElementsMatch(t, []string{"page", "size"}, fields)
}

func TestParseID(t *testing.T) {
	id, err := validation.ParseID("id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		_, err := validation.ParseID("id", raw)
		assert.Equal(t, errs.KindValidation, errs.KindOf(err), raw)
	}
}

func TestPositiveID(t *testing.T) {
	assert.NoError(t, validation.PositiveID("userId", 1))
	assert.Error(t, validation.PositiveID("userId", 0))
}

func TestStruct_TitleBoundMatchesModel(t *testing.T) {
	longest := dto.PostRequest{Title: strings.Repeat("t", models.TitleMaxLength-1), Content: "c", UserID: 1}
	assert.NoError(t, validation.Struct(longest))

	tooLong := dto.PostRequest{Title: strings.Repeat("t", models.TitleMaxLength), Content: "c", UserID: 1}
	assert.Equal(t, []string{"title"}, violatedFields(t, validation.Struct(tooLong)))
}

func TestPageInRange(t *testing.T) {
	assert.NoError(t, validation.PageInRange(0, 20))
	assert.NoError(t, validation.PageInRange(math.MaxInt/4, 4))

	err := validation.PageInRange(math.MaxInt/4+1, 4)
	assert.Equal(t, []errs.FieldViolation{{Field: "page", Rule: "max"}}, errs.FieldsOf(err))
}
