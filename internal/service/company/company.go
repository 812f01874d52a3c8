package company

import (
	"fmt"
	"strings"

	"barista/internal/entities"
)

const serviceTitle = "Coffee TTS/STT API"

var coffeeCorp = entities.Company{
	Name:        "CoffeeCorp",
	Founded:     2010,
	Description: "A specialty coffee company focused on ethically sourced coffee beans, innovative brewing methods, and premium cafe experiences.",
	Services: []string{
		"Specialty Coffee Production",
		"Coffee Subscription Service",
		"Barista Training Programs",
		"Coffee Shop Franchising",
	},
	Partnerships: []string{"Fair Trade Certified", "Rainforest Alliance"},
	Mission:      "To elevate the coffee experience through sustainability, quality, and innovation",
	Contact: entities.CompanyContact{
		Email:   "contact@coffeecorp.com",
		Phone:   "+1-800-COFFEE-1",
		Website: "www.coffeecorp.com",
	},
}

type rule struct {
	keywords []string
	answer   func(c entities.Company) string
}

// Правила проверяются по порядку, срабатывает первое совпадение.
var rules = []rule{
	{
		keywords: []string{"service", "offer"},
		answer: func(c entities.Company) string {
			return fmt.Sprintf("%s offers %s.", c.Name, strings.Join(c.Services, ", "))
		},
	},
	{
		keywords: []string{"contact", "reach"},
		answer: func(c entities.Company) string {
			return fmt.Sprintf("You can contact %s at %s or %s.", c.Name, c.Contact.Email, c.Contact.Phone)
		},
	},
	{
		keywords: []string{"mission", "goal"},
		answer: func(c entities.Company) string {
			return c.Mission
		},
	},
	{
		keywords: []string{"partner"},
		answer: func(c entities.Company) string {
			return fmt.Sprintf("%s is partnered with %s.", c.Name, strings.Join(c.Partnerships, ", "))
		},
	},
}

func (r rule) matches(query string) bool {
	for _, keyword := range r.keywords {
		if strings.Contains(query, keyword) {
			return true
		}
	}
	return false
}

type Service struct {
	version string
}

func New(version string) *Service {
	return &Service{version: version}
}

func (s *Service) GetCompanyInfo(query string) entities.CompanyInfo {
	company := coffeeCorp
	if query == "" {
		return entities.CompanyInfo{Company: &company}
	}

	q := strings.ToLower(query)
	for _, r := range rules {
		if r.matches(q) {
			return entities.CompanyInfo{Answer: r.answer(company)}
		}
	}

	return entities.CompanyInfo{Answer: fmt.Sprintf("%s is %s", company.Name, company.Description)}
}

// ServiceInfo метаданные фасада, их возвращает инструмент company_info.
func (s *Service) ServiceInfo() entities.ServiceInfo {
	return entities.ServiceInfo{
		Title:   serviceTitle,
		Version: s.version,
	}
}
