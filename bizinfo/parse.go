package bizinfo

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/bizmatch/bizmatch/core"
)

// apiItem covers both field vocabularies the portal emits: the current
// announcement API names (pblancNm, bsnsSumryCn, ...) and the plain
// names the legacy feed uses. The same shape appears in JSON and XML.
type apiItem struct {
	PblancNm        string `json:"pblancNm" xml:"pblancNm"`
	Title           string `json:"title" xml:"title"`
	JrsdInsttNm     string `json:"jrsdInsttNm" xml:"jrsdInsttNm"`
	Target          string `json:"target" xml:"target"`
	ExcInsttNm      string `json:"excInsttNm" xml:"excInsttNm"`
	Agency          string `json:"agency" xml:"agency"`
	BizPbancCtgy    string `json:"bizPbancCtgy" xml:"bizPbancCtgy"`
	Category        string `json:"category" xml:"category"`
	ReqstBeginEndDe string `json:"reqstBeginEndDe" xml:"reqstBeginEndDe"`
	PbancRcptBgngDt string `json:"pbancRcptBgngDt" xml:"pbancRcptBgngDt"`
	PbancRcptEndDt  string `json:"pbancRcptEndDt" xml:"pbancRcptEndDt"`
	StartDate       string `json:"startDate" xml:"startDate"`
	EndDate         string `json:"endDate" xml:"endDate"`
	DetailURL       string `json:"detailUrl" xml:"detailUrl"`
	PblancURL       string `json:"pblancUrl" xml:"pblancUrl"`
	Link            string `json:"link" xml:"link"`
	BsnsSumryCn     string `json:"bsnsSumryCn" xml:"bsnsSumryCn"`
	Description     string `json:"description" xml:"description"`
}

type jsonEnvelope struct {
	JSONArray []apiItem `json:"jsonArray"`
	Response  struct {
		Body struct {
			Items []apiItem `json:"items"`
		} `json:"body"`
	} `json:"response"`
	ReqErr string `json:"reqErr"`
}

// parsePrograms decodes an API response body, attempting JSON first and
// falling back to the XML feed shape.
func parsePrograms(body []byte, portalBase string) ([]core.Program, error) {
	var env jsonEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if env.ReqErr != "" {
			return nil, fmt.Errorf("%w: %s", ErrAPIError, env.ReqErr)
		}
		items := env.JSONArray
		if len(items) == 0 {
			items = env.Response.Body.Items
		}
		return itemsToPrograms(items, portalBase), nil
	}

	items, err := parseXMLItems(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsableResponse, err)
	}
	return itemsToPrograms(items, portalBase), nil
}

// parseXMLItems collects every <item> element regardless of nesting
// depth, matching the feed's channel/item layout without hard-coding it.
func parseXMLItems(body []byte) ([]apiItem, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	var items []apiItem
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "item" {
			continue
		}
		var item apiItem
		if err := dec.DecodeElement(&item, &start); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func itemsToPrograms(items []apiItem, portalBase string) []core.Program {
	programs := make([]core.Program, 0, len(items))
	for _, item := range items {
		start, end := item.applicationWindow()
		programs = append(programs, core.Program{
			Title:       coalesce(item.PblancNm, item.Title),
			Description: coalesce(item.BsnsSumryCn, item.Description),
			Target:      coalesce(item.JrsdInsttNm, item.Target),
			Category:    coalesce(item.BizPbancCtgy, item.Category),
			Agency:      coalesce(item.ExcInsttNm, item.Agency),
			Link:        absolutizeLink(coalesce(item.DetailURL, item.PblancURL, item.Link), portalBase),
			StartDate:   start,
			EndDate:     end,
		})
	}
	return programs
}

// applicationWindow resolves the reception period. The combined field
// ("2026-01-02 ~ 2026-02-03") wins when present; otherwise the separate
// begin/end fields are used.
func (item *apiItem) applicationWindow() (start, end string) {
	if strings.Contains(item.ReqstBeginEndDe, "~") {
		parts := strings.SplitN(item.ReqstBeginEndDe, "~", 2)
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return coalesce(item.PbancRcptBgngDt, item.StartDate),
		coalesce(item.PbancRcptEndDt, item.EndDate)
}

// absolutizeLink prefixes portal-relative links with the portal origin.
func absolutizeLink(link, portalBase string) string {
	if strings.HasPrefix(link, "/") {
		return portalBase + link
	}
	return link
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// apiErrorMessage extracts an application-level error message from a
// JSON response body, if one is present.
func apiErrorMessage(body []byte) (string, bool) {
	var env jsonEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return "", false
	}
	return env.ReqErr, env.ReqErr != ""
}
