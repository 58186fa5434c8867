package request

import "foampro/internal/usecase/interfaces"

// AccountNotifyRequest is sent by the sign-up flow once the account exists.
type AccountNotifyRequest struct {
	Email       string `json:"email" binding:"required"`
	CompanyName string `json:"companyName"`
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password"`
	CrewPin     string `json:"crewPin"`
}

func (r AccountNotifyRequest) Message() interfaces.AccountCreationEmail {
	return interfaces.AccountCreationEmail{
		To:          r.Email,
		CompanyName: r.CompanyName,
		Username:    r.Username,
		Password:    r.Password,
		CrewPin:     r.CrewPin,
	}
}
