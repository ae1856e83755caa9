package ai

import (
	"fmt"
	"strings"
)

// Kind names one generator.
type Kind string

const (
	KindExcuse   Kind = "excuse"   // 변명
	KindPetition Kind = "petition" // 탄원서
	KindRefusal  Kind = "refusal"  // 거절
	KindConsult  Kind = "consult"  // 고민 상담
	KindHabit    Kind = "habit"    // 습관 추천
)

// Request fields.
const (
	FieldSituation    = "situation"
	FieldRelationship = "relationship"
	FieldDetail       = "detail"
)

const baseSystemPrompt = "당신은 한국어로 답하는 재치 있고 따뜻한 글쓰기 도우미입니다. " +
	"사용자를 존중하고, 불법적이거나 남을 해치는 내용은 쓰지 않습니다."

type kindSpec struct {
	required []string
	json     bool
	system   string
	build    func(Request) string
}

var kinds = map[Kind]kindSpec{
	KindExcuse: {
		required: []string{FieldSituation, FieldRelationship},
		system:   baseSystemPrompt + " 상황에 맞는 그럴듯하고 센스 있는 변명을 만들어 줍니다.",
		build: func(r Request) string {
			var b strings.Builder
			fmt.Fprintf(&b, "상황: %s\n", r.Situation)
			fmt.Fprintf(&b, "상대방과의 관계: %s\n", r.Relationship)
			writeDetail(&b, r.Detail)
			b.WriteString("\n위 상황에서 상대방이 납득할 만한 변명을 3~5문장으로 작성해 주세요. 관계에 맞는 말투를 사용하세요.")
			return b.String()
		},
	},
	KindPetition: {
		required: []string{FieldSituation, FieldRelationship, FieldDetail},
		system:   baseSystemPrompt + " 진심이 느껴지는 정중한 탄원서를 작성합니다.",
		build: func(r Request) string {
			var b strings.Builder
			fmt.Fprintf(&b, "사건 개요: %s\n", r.Situation)
			fmt.Fprintf(&b, "탄원인과 대상자의 관계: %s\n", r.Relationship)
			fmt.Fprintf(&b, "선처를 구하는 이유: %s\n", r.Detail)
			b.WriteString("\n위 내용을 바탕으로 제목, 인사, 본문, 맺음말을 갖춘 탄원서를 작성해 주세요.")
			return b.String()
		},
	},
	KindRefusal: {
		required: []string{FieldSituation, FieldRelationship},
		system:   baseSystemPrompt + " 관계를 해치지 않으면서 분명하게 거절하는 말을 만들어 줍니다.",
		build: func(r Request) string {
			var b strings.Builder
			fmt.Fprintf(&b, "부탁받은 내용: %s\n", r.Situation)
			fmt.Fprintf(&b, "상대방과의 관계: %s\n", r.Relationship)
			writeDetail(&b, r.Detail)
			b.WriteString("\n상대방의 기분을 상하지 않게 하면서도 확실하게 거절하는 메시지를 작성해 주세요.")
			return b.String()
		},
	},
	KindConsult: {
		required: []string{FieldSituation},
		json:     true,
		system:   baseSystemPrompt + " 고민을 들어주는 다정한 상담가입니다. 반드시 JSON만 출력합니다.",
		build: func(r Request) string {
			var b strings.Builder
			fmt.Fprintf(&b, "고민: %s\n", r.Situation)
			writeDetail(&b, r.Detail)
			b.WriteString("\n다음 형식의 JSON으로만 답해 주세요:\n")
			b.WriteString(`{"summary": "고민 요약 한 문장", "advice": ["조언1", "조언2", "조언3"], "encouragement": "응원의 한마디"}`)
			return b.String()
		},
	},
	KindHabit: {
		required: []string{FieldSituation},
		json:     true,
		system:   baseSystemPrompt + " 실천하기 쉬운 작은 습관을 추천하는 코치입니다. 반드시 JSON만 출력합니다.",
		build: func(r Request) string {
			var b strings.Builder
			fmt.Fprintf(&b, "목표: %s\n", r.Situation)
			writeDetail(&b, r.Detail)
			b.WriteString("\n목표 달성에 도움이 되는 습관 3~5개를 다음 형식의 JSON으로만 답해 주세요:\n")
			b.WriteString(`{"habits": [{"name": "습관 이름", "description": "한 줄 설명", "emoji": "이모지", "frequency": "매일"}]}`)
			return b.String()
		},
	},
}

func writeDetail(b *strings.Builder, detail string) {
	if detail != "" {
		fmt.Fprintf(b, "추가 정보: %s\n", detail)
	}
}

// Kinds returns every supported kind.
func Kinds() []Kind {
	return []Kind{KindExcuse, KindPetition, KindRefusal, KindConsult, KindHabit}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := kinds[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}
