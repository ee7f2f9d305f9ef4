package filter

// AgeGroups maps the selectable age brackets to the keywords that mark
// a program as targeting that bracket.
var AgeGroups = map[string][]string{
	"청년 (만 19~39세)":  {"청년", "예비창업자"},
	"중장년 (만 40~59세)": {"중장년", "중년", "40대", "50대"},
	"시니어 (만 60세 이상)": {"시니어", "장년", "60세", "노인"},
}

// Regions maps each 시/도 to its selectable 시/군/구 subdivisions.
var Regions = map[string][]string{
	"서울특별시":    {"강남구", "강동구", "마포구", "송파구", "영등포구", "종로구", "중구"},
	"부산광역시":    {"해운대구", "부산진구", "동래구", "사하구", "금정구"},
	"대구광역시":    {"수성구", "달서구", "중구", "북구"},
	"인천광역시":    {"남동구", "연수구", "부평구", "서구"},
	"광주광역시":    {"동구", "서구", "남구", "북구", "광산구"},
	"대전광역시":    {"유성구", "서구", "중구", "동구", "대덕구"},
	"울산광역시":    {"남구", "중구", "동구", "북구", "울주군"},
	"세종특별자치시":  {},
	"경기도":      {"수원시", "성남시", "고양시", "용인시", "부천시", "안산시", "평택시"},
	"강원특별자치도":  {"춘천시", "원주시", "강릉시", "속초시"},
	"충청북도":     {"청주시", "충주시", "제천시"},
	"충청남도":     {"천안시", "아산시", "서산시", "공주시"},
	"전북특별자치도":  {"전주시", "군산시", "익산시", "정읍시"},
	"전라남도":     {"목포시", "여수시", "순천시", "광양시"},
	"경상북도":     {"포항시", "구미시", "경주시", "안동시"},
	"경상남도":     {"창원시", "김해시", "진주시", "양산시"},
	"제주특별자치도":  {"제주시", "서귀포시"},
}

// businessKeywords expands each selectable business type into the terms
// that identify it inside announcement text.
var businessKeywords = map[string][]string{
	"도소매업":       {"도소매", "소매", "판매", "유통", "상점"},
	"음식점업":       {"음식점", "식당", "요식업", "외식", "카페", "베이커리"},
	"숙박업":        {"숙박", "호텔", "펜션", "모텔", "민박"},
	"제조업":        {"제조", "생산", "공장"},
	"서비스업":       {"서비스", "미용", "세탁", "수리"},
	"건설업":        {"건설", "건축", "인테리어"},
	"운수업":        {"운수", "운송", "물류", "택배", "택시"},
	"교육서비스업":     {"교육", "학원", "학습"},
	"보건업":        {"보건", "의료", "병원", "약국", "의원"},
	"예술/스포츠/여가": {"예술", "스포츠", "여가", "문화", "레저"},
	"정보통신업":      {"정보통신", "IT", "소프트웨어", "인터넷"},
	"농림어업":       {"농업", "어업", "축산", "임업", "농림"},
	"기타":         {},
}

// BusinessTypes lists the selectable business types in display order.
var BusinessTypes = []string{
	"도소매업", "음식점업", "숙박업", "제조업", "서비스업", "건설업",
	"운수업", "교육서비스업", "보건업", "예술/스포츠/여가", "정보통신업",
	"농림어업", "기타",
}

// SupportCategories lists the portal's announcement categories.
var SupportCategories = []string{
	"금융", "기술", "인력", "수출", "내수", "창업", "경영", "기타",
}
