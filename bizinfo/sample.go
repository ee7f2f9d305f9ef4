package bizinfo

import "github.com/bizmatch/bizmatch/core"

// portalSearchURL is the public announcement search page, used for the
// offline catalog's links.
const portalSearchURL = "https://www.bizinfo.go.kr/web/lay1/bbs/S1T122C128/AS/74/list.do"

// SamplePrograms returns a small built-in catalog for running without an
// API key. Every record is clearly marked as test data.
func SamplePrograms() []core.Program {
	programs := []core.Program{
		{
			Title:       "[테스트] 소상공인 경영안정자금 지원사업",
			Target:      "매출 감소 소상공인, 청년 사업자",
			Agency:      "중소벤처기업부",
			Category:    "금융",
			StartDate:   "2026-01-15",
			EndDate:     "2026-02-28",
			Link:        portalSearchURL + "?srchPblancNm=경영안정자금",
			Description: "[테스트 데이터] API 키를 설정하면 실제 지원사업이 표시됩니다.",
		},
		{
			Title:       "[테스트] 청년 소상공인 창업지원 프로그램",
			Target:      "만 39세 이하 청년 예비창업자",
			Agency:      "소상공인시장진흥공단",
			Category:    "창업",
			StartDate:   "2026-02-01",
			EndDate:     "2026-03-15",
			Link:        portalSearchURL + "?srchPblancNm=청년창업",
			Description: "[테스트 데이터] API 키를 설정하면 실제 지원사업이 표시됩니다.",
		},
		{
			Title:       "[테스트] 소상공인 디지털 전환 지원사업",
			Target:      "전국 소상공인",
			Agency:      "중소벤처기업부",
			Category:    "기술",
			StartDate:   "2026-02-10",
			EndDate:     "2026-04-30",
			Link:        portalSearchURL + "?srchPblancNm=디지털",
			Description: "[테스트 데이터] API 키를 설정하면 실제 지원사업이 표시됩니다.",
		},
		{
			Title:       "[테스트] 시니어 창업 아카데미",
			Target:      "만 60세 이상 시니어 예비창업자",
			Agency:      "소상공인시장진흥공단",
			Category:    "창업",
			StartDate:   "2026-03-01",
			EndDate:     "2026-05-31",
			Link:        portalSearchURL + "?srchPblancNm=시니어",
			Description: "[테스트 데이터] API 키를 설정하면 실제 지원사업이 표시됩니다.",
		},
	}

	for i := range programs {
		core.NormalizeProgram(&programs[i])
	}
	return programs
}
