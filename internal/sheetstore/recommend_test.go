package sheetstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func needsCorpus(values ...string) []Record {
	corpus := make([]Record, len(values))
	for i, v := range values {
		corpus[i] = Record{Needs: v}
	}
	return corpus
}

func TestRecommendExcludesExactCurrentValue(t *testing.T) {
	corpus := needsCorpus(
		"원내교육 프로그램",
		"원내교육 프로그램 확대",
		"장비 교체",
	)

	got := Recommend("needs", "원내교육 프로그램", corpus)

	assert.NotContains(t, got, "원내교육 프로그램")
	assert.Contains(t, got, "원내교육 프로그램 확대")
}

func TestRecommendCapsAtFive(t *testing.T) {
	values := make([]string, 8)
	for i := range values {
		values[i] = fmt.Sprintf("검사항목 추가 요청 %d", i)
	}
	corpus := needsCorpus(values...)

	got := Recommend("needs", "검사항목", corpus)

	assert.Len(t, got, 5)
	// Corpus order, not ranked.
	assert.Equal(t, values[:5], got)
}

func TestRecommendShortTokensIgnored(t *testing.T) {
	// Tokens of two characters or fewer never match anything.
	corpus := needsCorpus("원내 지원", "교육 확대")
	got := Recommend("needs", "원내 교육", corpus)
	assert.Empty(t, got)
}

func TestRecommendBidirectionalSubstring(t *testing.T) {
	corpus := needsCorpus("단가", "검사단가 인하 요청")

	// Query token contains the first candidate's token, and is contained
	// by the second candidate's token.
	got := Recommend("needs", "검사단가", corpus)

	assert.Equal(t, []string{"단가", "검사단가 인하 요청"}, got)
}

func TestRecommendDeduplicatesAndSkipsBlanks(t *testing.T) {
	corpus := needsCorpus("장비교체 문의", "", "  ", "장비교체 문의", "장비교체 검토")

	got := Recommend("needs", "장비교체", corpus)

	assert.Equal(t, []string{"장비교체 문의", "장비교체 검토"}, got)
}

func TestRecommendProgressField(t *testing.T) {
	corpus := []Record{
		{Progress: "계약서 검토중", Needs: "무관"},
		{Progress: "견적 발송", Needs: "계약서 검토중"},
	}

	got := Recommend("progress", "계약서", corpus)

	assert.Equal(t, []string{"계약서 검토중"}, got)
}

func TestRecommendUnknownField(t *testing.T) {
	corpus := needsCorpus("아무거나")
	assert.Nil(t, Recommend("address", "서울시내", corpus))
}
