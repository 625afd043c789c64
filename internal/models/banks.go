package models

// Bank is an entry in the Hong Kong bank directory used by the bank
// account section of the form. Code is the three-digit clearing code.
type Bank struct {
	Name   string `json:"name"`
	NameCn string `json:"nameCn"`
	Code   string `json:"code"`
}

var HongKongBanks = []Bank{
	{Name: "HSBC (Hongkong and Shanghai Banking Corporation)", NameCn: "滙豐銀行", Code: "004"},
	{Name: "Bank of China (Hong Kong)", NameCn: "中國銀行(香港)", Code: "012"},
	{Name: "Standard Chartered Bank (Hong Kong)", NameCn: "渣打銀行(香港)", Code: "003"},
	{Name: "Hang Seng Bank", NameCn: "恒生銀行", Code: "024"},
	{Name: "Bank of East Asia", NameCn: "東亞銀行", Code: "015"},
	{Name: "DBS Bank (Hong Kong)", NameCn: "星展銀行(香港)", Code: "016"},
	{Name: "Citibank (Hong Kong)", NameCn: "花旗銀行(香港)", Code: "006"},
	{Name: "China Construction Bank (Asia)", NameCn: "中國建設銀行(亞洲)", Code: "009"},
	{Name: "Industrial and Commercial Bank of China (Asia)", NameCn: "中國工商銀行(亞洲)", Code: "072"},
	{Name: "Agricultural Bank of China (Hong Kong)", NameCn: "中國農業銀行(香港)", Code: "010"},
	{Name: "Bank of Communications (Hong Kong)", NameCn: "交通銀行(香港)", Code: "027"},
	{Name: "China Merchants Bank (Hong Kong)", NameCn: "招商銀行(香港)", Code: "238"},
	{Name: "Nanyang Commercial Bank", NameCn: "南洋商業銀行", Code: "025"},
	{Name: "Wing Lung Bank", NameCn: "永隆銀行", Code: "020"},
	{Name: "Chiyu Banking Corporation", NameCn: "集友銀行", Code: "039"},
	{Name: "Public Bank (Hong Kong)", NameCn: "大眾銀行(香港)", Code: "026"},
	{Name: "Chong Hing Bank", NameCn: "創興銀行", Code: "041"},
	{Name: "Shanghai Commercial Bank", NameCn: "上海商業銀行", Code: "025"},
	{Name: "CITIC Bank International", NameCn: "中信銀行國際", Code: "018"},
	{Name: "China Minsheng Banking Corporation (Hong Kong)", NameCn: "中國民生銀行(香港)", Code: "353"},
}
