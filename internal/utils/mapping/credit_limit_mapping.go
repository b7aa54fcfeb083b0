package mapping

import (
	"github.com/SscSPs/invoice_finance_app/internal/core/domain"
	"github.com/SscSPs/invoice_finance_app/internal/models"
)

// ToModelCreditLimit converts a domain CreditLimitInfo header to a model CreditLimit
func ToModelCreditLimit(d domain.CreditLimitInfo) models.CreditLimit {
	return models.CreditLimit{
		CreditLimitInfoID: d.CreditLimitInfoID,
		OrganizationID:    d.OrganizationID,
		MasterLimit:       d.MasterLimit,
		LastReviewDate:    d.LastReviewDate,
		NextReviewDate:    d.NextReviewDate,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCreditLimit converts a model CreditLimit and its facility rows to a domain CreditLimitInfo
func ToDomainCreditLimit(m models.CreditLimit, facilities []models.Facility) domain.CreditLimitInfo {
	return domain.CreditLimitInfo{
		CreditLimitInfoID: m.CreditLimitInfoID,
		OrganizationID:    m.OrganizationID,
		MasterLimit:       m.MasterLimit,
		LastReviewDate:    m.LastReviewDate,
		NextReviewDate:    m.NextReviewDate,
		Facilities:        ToDomainFacilitySlice(facilities),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelFacility converts a domain Facility to a model Facility
func ToModelFacility(d domain.Facility) models.Facility {
	return models.Facility{
		FacilityID:         d.FacilityID,
		CreditLimitInfoID:  d.CreditLimitInfoID,
		FacilityType:       string(d.Type),
		TotalLimit:         d.TotalLimit,
		AllocatedLimit:     d.AllocatedLimit,
		CurrentUtilization: d.CurrentUtilization,
		RelatedPartyID:     d.RelatedPartyID,
		ReviewEndDate:      d.ReviewEndDate,
		GracePeriodDays:    d.GracePeriodDays,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFacility converts a model Facility to a domain Facility
func ToDomainFacility(m models.Facility) domain.Facility {
	return domain.Facility{
		FacilityID:         m.FacilityID,
		CreditLimitInfoID:  m.CreditLimitInfoID,
		Type:               domain.FacilityType(m.FacilityType),
		TotalLimit:         m.TotalLimit,
		AllocatedLimit:     m.AllocatedLimit,
		CurrentUtilization: m.CurrentUtilization,
		RelatedPartyID:     m.RelatedPartyID,
		ReviewEndDate:      m.ReviewEndDate,
		GracePeriodDays:    m.GracePeriodDays,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFacilitySlice converts a slice of model Facilities to a slice of domain Facilities
func ToDomainFacilitySlice(ms []models.Facility) []domain.Facility {
	ds := make([]domain.Facility, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFacility(m)
	}
	return ds
}
