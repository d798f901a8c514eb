/*
 * navigation.go, part of chemdex.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

//Package navigation keeps track of which substance is being inspected.
//There are two views: the list of all substances, and the detail
//view of one of them.
package navigation

import (
	"errors"
	"fmt"

	"github.com/rmera/chemdex/catalog"
)

//ErrAtList is returned by Back when the controller is already in the list view.
var ErrAtList = errors.New("navigation: already at the substance list")

//State is either ListView or DetailView.
type State interface {
	isState()
	String() string
}

//ListView is the state in which all substances are listed.
type ListView struct{}

func (ListView) isState() {}

func (ListView) String() string { return "list" }

//DetailView is the state in which the substance Name is inspected.
type DetailView struct {
	Name string
}

func (DetailView) isState() {}

func (D DetailView) String() string { return fmt.Sprintf("detail(%s)", D.Name) }

//Finder looks up substances by name. *catalog.Catalog implements it.
type Finder interface {
	FindByName(name string) (catalog.Record, error)
}

//Controller moves between the list and detail views. A Controller
//is meant to be used by one session, it is not safe for concurrent use.
type Controller struct {
	finder Finder
	state  State
}

//New returns a controller in the list view.
func New(finder Finder) *Controller {
	return &Controller{finder: finder, state: ListView{}}
}

//State returns the current state.
func (C *Controller) State() State {
	return C.state
}

//Select moves to the detail view of the substance name, from any state, and returns
//its record. If the substance doesn't exist, the error from the Finder is returned
//and the state doesn't change.
func (C *Controller) Select(name string) (catalog.Record, error) {
	r, err := C.finder.FindByName(name)
	if err != nil {
		return catalog.Record{}, err
	}
	C.state = DetailView{Name: r.Name}
	return r, nil
}

//Back returns to the list view. In the list view, it returns ErrAtList.
func (C *Controller) Back() error {
	if _, ok := C.state.(ListView); ok {
		return ErrAtList
	}
	C.state = ListView{}
	return nil
}

//Current returns the record of the substance in the detail view. ok is false in the
//list view. If the record can't be found anymore, the error is returned.
func (C *Controller) Current() (r catalog.Record, ok bool, err error) {
	d, ok := C.state.(DetailView)
	if !ok {
		return catalog.Record{}, false, nil
	}
	r, err = C.finder.FindByName(d.Name)
	return r, true, err
}
