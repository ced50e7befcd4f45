package tui

import (
	"github.com/avidalm/petkeeper/models"
)

type loginDoneMsg struct {
	session models.Session
	err     error
}

type registerDoneMsg struct {
	session models.Session
	err     error
}

type petsLoadedMsg struct {
	pets []models.Pet
	err  error
}

type petSelectedMsg struct {
	pet models.Pet
	err error
}

type logoutDoneMsg struct {
	err error
}

type petSavedMsg struct {
	err error
}

type petDeletedMsg struct {
	err error
}

type historyChangedMsg struct {
	pet models.Pet
	err error
}

type accountDeletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
