package models

// District is one of the 18 Hong Kong districts offered by the address
// section of the intake form.
type District struct {
	Name   string `json:"name"`
	NameCn string `json:"nameCn"`
}

var HongKongDistricts = []District{
	{Name: "Central and Western", NameCn: "中西區"},
	{Name: "Eastern", NameCn: "東區"},
	{Name: "Southern", NameCn: "南區"},
	{Name: "Wan Chai", NameCn: "灣仔區"},
	{Name: "Sham Shui Po", NameCn: "深水埗區"},
	{Name: "Kowloon City", NameCn: "九龍城區"},
	{Name: "Wong Tai Sin", NameCn: "黃大仙區"},
	{Name: "Kwun Tong", NameCn: "觀塘區"},
	{Name: "Yau Tsim Mong", NameCn: "油尖旺區"},
	{Name: "Islands", NameCn: "離島區"},
	{Name: "Kwai Tsing", NameCn: "葵青區"},
	{Name: "North", NameCn: "北區"},
	{Name: "Sai Kung", NameCn: "西貢區"},
	{Name: "Sha Tin", NameCn: "沙田區"},
	{Name: "Tai Po", NameCn: "大埔區"},
	{Name: "Tsuen Wan", NameCn: "荃灣區"},
	{Name: "Tuen Mun", NameCn: "屯門區"},
	{Name: "Yuen Long", NameCn: "元朗區"},
}

// IsHongKongDistrict reports whether name matches a district's English
// name exactly.
func IsHongKongDistrict(name string) bool {
	for _, d := range HongKongDistricts {
		if d.Name == name {
			return true
		}
	}
	return false
}
