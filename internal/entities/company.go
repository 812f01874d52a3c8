package entities

type Company struct {
	Name         string
	Founded      int
	Description  string
	Services     []string
	Partnerships []string
	Mission      string
	Contact      CompanyContact
}

type CompanyContact struct {
	Email   string
	Phone   string
	Website string
}

// CompanyInfo ответ на запрос информации о компании.
// При пустом запросе заполнен Company, иначе Answer.
type CompanyInfo struct {
	Company *Company
	Answer  string
}

type ServiceInfo struct {
	Title   string
	Version string
}
