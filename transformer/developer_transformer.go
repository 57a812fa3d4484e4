package transformer

import (
	"strings"

	"github.com/l3montree-dev/appcatalog/database/models"
	"github.com/l3montree-dev/appcatalog/dtos"
	"github.com/l3montree-dev/appcatalog/utils"
)

func DeveloperModelToDTO(developer models.Developer) dtos.DeveloperDTO {
	return dtos.DeveloperDTO{
		DeveloperID:      developer.DeveloperID,
		DeveloperName:    developer.DeveloperName,
		DeveloperEmail:   developer.DeveloperEmail,
		DeveloperWebsite: developer.DeveloperWebsite,
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return utils.EmptyThenNil(strings.TrimSpace(*s))
}

func DeveloperRequestToModel(id int64, req dtos.DeveloperCreateRequest) models.Developer {
	return models.Developer{
		DeveloperID:      id,
		DeveloperName:    strings.TrimSpace(req.DeveloperName),
		DeveloperEmail:   trimOptional(req.DeveloperEmail),
		DeveloperWebsite: trimOptional(req.DeveloperWebsite),
	}
}
