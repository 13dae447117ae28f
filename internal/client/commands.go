package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-business-card/models"
)

func (a *App) createCard(ctx context.Context, args []string) error {
	fs := newFlagSet("card-create")
	file := fs.String("f", "", "JSON file with the card, - for stdin")
	photo := fs.String("photo", "", "image file used as profile photo")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("%w: card-create needs -f", ErrUsage)
	}

	var card models.Card
	if err := readJSON(*file, &card); err != nil {
		return err
	}
	if card.CardID == "" {
		card.CardID = a.ids.Generate()
	}
	if *photo != "" {
		uri, err := photoDataURI(*photo)
		if err != nil {
			return err
		}
		card.ProfilePhoto = uri
	}

	if err := a.api.CreateCard(ctx, card); err != nil {
		return err
	}
	return a.print(result{Message: "card created", CardID: card.CardID})
}

func (a *App) updateCard(ctx context.Context, args []string) error {
	fs := newFlagSet("card-update")
	file := fs.String("f", "", "JSON file with the changed fields, - for stdin")
	id := fs.String("id", "", "card id, overrides card_id of the file")
	photo := fs.String("photo", "", "image file used as profile photo")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	var update models.CardUpdate
	if *file != "" {
		if err := readJSON(*file, &update); err != nil {
			return err
		}
	}
	if *id != "" {
		update.CardID = *id
	}
	if update.CardID == "" {
		return fmt.Errorf("%w: card-update needs a card id", ErrUsage)
	}
	if *photo != "" {
		uri, err := photoDataURI(*photo)
		if err != nil {
			return err
		}
		update.ProfilePhoto = &uri
	}

	if err := a.api.UpdateCard(ctx, update); err != nil {
		return err
	}
	return a.print(result{Message: "card updated", CardID: update.CardID})
}

func (a *App) getCard(ctx context.Context, args []string) error {
	cardID, err := cardIDFlag("card-get", args)
	if err != nil {
		return err
	}

	card, err := a.api.GetCard(ctx, cardID)
	if err != nil {
		return err
	}
	return a.print(card)
}

func (a *App) deleteCard(ctx context.Context, args []string) error {
	cardID, err := cardIDFlag("card-delete", args)
	if err != nil {
		return err
	}

	if err = a.api.DeleteCard(ctx, cardID); err != nil {
		return err
	}
	return a.print(result{Message: "card deleted", CardID: cardID})
}

func (a *App) register(ctx context.Context, args []string) error {
	var user models.User

	fs := newFlagSet("register")
	fs.StringVar(&user.Name, "name", "", "account holder name")
	fs.StringVar(&user.Email, "email", "", "account email")
	fs.StringVar(&user.Password, "password", "", "account password")
	fs.StringVar(&user.CardID, "card-id", "", "card linked to the account")
	fs.StringVar(&user.Phone, "phone", "", "optional phone number")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if err := a.api.Register(ctx, user); err != nil {
		return err
	}
	return a.print(result{Message: "user created", CardID: user.CardID})
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest

	fs := newFlagSet("login")
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cardID, err := a.api.Login(ctx, req)
	if err != nil {
		return err
	}
	return a.print(result{Message: "logged in", CardID: cardID})
}

func cardIDFlag(name string, args []string) (string, error) {
	fs := newFlagSet(name)
	id := fs.String("id", "", "card id")
	if err := parseFlags(fs, args); err != nil {
		return "", err
	}
	if *id == "" {
		return "", fmt.Errorf("%w: %s needs -id", ErrUsage, name)
	}
	return *id, nil
}
