package main

import (
	"fmt"

	"market/config"
	"market/internal/domain/entity"
	"market/internal/infra/auth"
	"market/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runToken(userID, roles string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return errors.Wrap(err, "invalid --user")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	roleSet := entity.RolesFromStrings(util.SplitList(roles))
	if len(roleSet) == 0 {
		return errors.Errorf("no valid role in --roles %q", roles)
	}

	token, err := tokenSvc.GenerateAccessToken(id, roleSet.Strings())
	if err != nil {
		return errors.Wrap(err, "failed to sign token")
	}

	fmt.Println(token)

	return nil
}
