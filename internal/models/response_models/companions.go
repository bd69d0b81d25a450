package response_models

type CompanionProfile struct {
	Gender   string `json:"gender"`
	Name     string `json:"name"`
	Country  string `json:"country"`
	Age      int    `json:"age"`
	Interest string `json:"interest"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}
