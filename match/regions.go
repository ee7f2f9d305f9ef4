package match

import "strings"

// Nationwide is the literal marker meaning a program applies to the whole
// country. A composite text containing it satisfies region compatibility
// unconditionally.
const Nationwide = "전국"

// regionKeywords is the fixed set of provincial and city-level
// administrative names recognized as region keywords in a query.
var regionKeywords = map[string]bool{
	"서울": true, "부산": true, "대구": true, "인천": true, "광주": true,
	"대전": true, "울산": true, "세종": true,
	"경기": true, "강원": true, "충북": true, "충남": true, "전북": true,
	"전남": true, "경북": true, "경남": true, "제주": true,
	"전라북도": true, "전라남도": true, "경상북도": true, "경상남도": true,
	"충청북도": true, "충청남도": true,
	"강원도": true, "경기도": true, "제주도": true, "제주특별자치도": true,
}

// cityRegions maps well-known city-level names to their province's short
// name. A query naming a city is compatible with programs announced for the
// whole province.
var cityRegions = map[string]string{
	"수원": "경기", "성남": "경기", "고양": "경기", "용인": "경기", "부천": "경기",
	"춘천": "강원", "원주": "강원", "강릉": "강원",
	"청주": "충북", "충주": "충북",
	"천안": "충남", "아산": "충남", "서산": "충남",
	"전주": "전북", "군산": "전북", "익산": "전북", "정읍": "전북",
	"여수": "전남", "순천": "전남", "목포": "전남",
	"포항": "경북", "구미": "경북", "경주": "경북", "안동": "경북",
	"창원": "경남", "김해": "경남", "진주": "경남", "양산": "경남",
	"서귀포": "제주",
}

// IsRegionKeyword reports whether a query keyword is an administrative
// region name, either a province-level name or a recognized city.
// Membership is structural, not learned.
func IsRegionKeyword(keyword string) bool {
	if regionKeywords[keyword] {
		return true
	}
	_, ok := cityRegions[keyword]
	return ok
}

// regionCompatible reports whether a candidate's lowered composite text is
// geographically compatible with the query's region keywords. With no region
// keywords in the query every candidate is trivially compatible; otherwise
// the text must contain one of the query's region names or the nationwide
// marker. A program restricted to a different region is never actionable, so
// this is a hard filter, not a scoring penalty.
func regionCompatible(compositeLower string, regions []string) bool {
	if len(regions) == 0 {
		return true
	}
	if strings.Contains(compositeLower, Nationwide) {
		return true
	}
	for _, region := range regions {
		if strings.Contains(compositeLower, strings.ToLower(region)) {
			return true
		}
		// A city keyword also accepts programs announced for its province.
		if province, ok := cityRegions[region]; ok && strings.Contains(compositeLower, province) {
			return true
		}
	}
	return false
}
