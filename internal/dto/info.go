package dto

import "barista/internal/entities"

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type SpeechTokenResponse struct {
	Token  string `json:"token"`
	Region string `json:"region"`
}

// SpeechTokenErrorResponse ошибка выдачи speech-токена отдаётся телом с кодом 200.
type SpeechTokenErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type ChatMessage struct {
	Role         string        `json:"role"`
	Content      string        `json:"content"`
	Name         string        `json:"name,omitempty"`
	FunctionCall *FunctionCall `json:"function_call,omitempty"`
}

type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type CompanyContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website"`
}

type CompanyResponse struct {
	Name         string         `json:"name"`
	Founded      int            `json:"founded"`
	Description  string         `json:"description"`
	Services     []string       `json:"services"`
	Partnerships []string       `json:"partnerships"`
	Mission      string         `json:"mission"`
	Contact      CompanyContact `json:"contact"`
}

type CompanyAnswerResponse struct {
	Info string `json:"info"`
}

type ServiceInfoResponse struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

func (r ChatRequest) ToDomain() []entities.ChatMessage {
	messages := make([]entities.ChatMessage, 0, len(r.Messages))
	for _, m := range r.Messages {
		msg := entities.ChatMessage{
			Role:    m.Role,
			Content: m.Content,
			Name:    m.Name,
		}
		if m.FunctionCall != nil {
			msg.FunctionCall = &entities.FunctionCall{
				Name:      m.FunctionCall.Name,
				Arguments: m.FunctionCall.Arguments,
			}
		}
		messages = append(messages, msg)
	}
	return messages
}

// FromDomainCompanyInfo полная карточка компании для пустого запроса, иначе {info}.
func FromDomainCompanyInfo(info entities.CompanyInfo) any {
	if info.Company == nil {
		return CompanyAnswerResponse{Info: info.Answer}
	}
	c := info.Company
	return CompanyResponse{
		Name:         c.Name,
		Founded:      c.Founded,
		Description:  c.Description,
		Services:     c.Services,
		Partnerships: c.Partnerships,
		Mission:      c.Mission,
		Contact: CompanyContact{
			Email:   c.Contact.Email,
			Phone:   c.Contact.Phone,
			Website: c.Contact.Website,
		},
	}
}

func FromDomainServiceInfo(info entities.ServiceInfo) ServiceInfoResponse {
	return ServiceInfoResponse{
		Title:   info.Title,
		Version: info.Version,
	}
}
