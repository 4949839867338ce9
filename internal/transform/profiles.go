package transform

import (
	"fmt"
)

// Profile 은 말투 변환에 쓰이는 페르소나 하나를 정의한다
// 어떤 프로필을 쓸지는 설정값으로 고르며, 코드에 하나를 박아두지 않는다
type Profile struct {
	Name         string  // 설정 파일에서 쓰는 이름
	SystemPrompt string  // 변환 모델에 주는 system 프롬프트
	UserPrompt   string  // 원본 메시지 앞에 붙는 변환 지시문
	Temperature  float32 // 샘플링 온도
	MaxTokens    int     // 응답 토큰 상한
}

var profiles = map[string]Profile{
	"gentle": {
		Name:         "gentle",
		SystemPrompt: "당신은 메시지를 따뜻하고 친근하게 만드는 전문가입니다. 주어진 메시지의 의미는 그대로 유지하면서, 자연스럽고 부드러운 말투로 변환해주세요. 적당한 이모지(1-2개)를 사용하고, 너무 과하지 않으면서도 친근감이 느껴지도록 표현해주세요. 200자 이내로 유지하세요.",
		UserPrompt:   "다음 문장을 자연스럽고 친근한 말투로 변환해주세요: 의미는 유지하면서 따뜻하고 부드럽게, 이모지 1-2개 정도 사용, 너무 과하지 않게 친근함을 표현해주세요.",
		Temperature:  0.6,
		MaxTokens:    120,
	},
	"playful": {
		Name:         "playful",
		SystemPrompt: "당신은 메시지를 재미있고 장난스럽게 만드는 전문가입니다. 주어진 메시지의 의미는 유지하면서, 과장되고 유쾌한 말투로 변환해주세요. 이모지를 2-3개 사용해서 웃음이 나도록 표현해주세요. 200자 이내로 유지하세요.",
		UserPrompt:   "다음 문장을 재미있고 과장된 장난스러운 말투로 변환해주세요: 의미는 유지하면서 유쾌하게, 이모지 2-3개 정도 사용해주세요.",
		Temperature:  0.9,
		MaxTokens:    120,
	},
	"minimal_edit": {
		Name:         "minimal_edit",
		SystemPrompt: "당신은 맞춤법 교정 전문가입니다. 주어진 메시지의 맞춤법과 띄어쓰기만 다듬고, 말투와 표현은 최대한 그대로 유지해주세요. 이모지는 추가하지 마세요. 200자 이내로 유지하세요.",
		UserPrompt:   "다음 문장의 맞춤법과 띄어쓰기만 다듬어주세요. 말투는 바꾸지 마세요.",
		Temperature:  0.2,
		MaxTokens:    120,
	},
}

// DefaultProfileName 은 설정에 프로필이 없을 때 쓰는 기본값이다
const DefaultProfileName = "gentle"

// ProfileByName 은 이름으로 프로필을 찾는다
// 모르는 이름이면 에러를 돌려주므로 기동 시점에 설정 오류를 잡을 수 있다
func ProfileByName(name string) (Profile, error) {
	if name == "" {
		name = DefaultProfileName
	}
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("unknown tone profile: %q", name)
	}
	return p, nil
}
