// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avlset/fault"
)

// ParseConfigurationFile - read and execute a Lua files and assign
// the results to a configuration structure
//
// each entry of variables becomes a global string in the Lua state
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.ErrInvalidStructPointer
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fault.ErrInvalidStructPointer
	}

	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		return fault.ErrMissingConfigFile
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	for k, v := range variables {
		L.SetGlobal(k, lua.LString(v))
	}

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
