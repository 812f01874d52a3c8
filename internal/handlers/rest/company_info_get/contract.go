//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=company_info_get_test
package company_info_get

import (
	"barista/internal/entities"
	"barista/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetCompanyInfo(query string) entities.CompanyInfo
}
