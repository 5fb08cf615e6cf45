package cmds

// Var defines name <value> to set the returned variable, and name. to reset it.
func Var[T any](name string, desc ...string) *T {
	var value T
	set := Func(func(v T) {
		value = v
	})
	if len(desc) > 0 {
		set.Desc(desc[0])
	}
	Define(name, set)
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name to turn the returned flag on, and !name to turn it off.
func Switch(name string, desc ...string) *bool {
	var value bool
	on := Func(func() {
		value = true
	})
	if len(desc) > 0 {
		on.Desc(desc[0])
	}
	Define(name, on)
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Flag is a switch that also remembers whether it was given at all.
type Flag struct {
	set   bool
	value bool
}

func (f *Flag) Get() (value bool, ok bool) {
	return f.value, f.set
}

// Toggle defines name and !name like Switch, but the result tells unset from off.
// name. forgets the setting.
func Toggle(name string, desc ...string) *Flag {
	flag := new(Flag)
	on := Func(func() {
		flag.set = true
		flag.value = true
	})
	if len(desc) > 0 {
		on.Desc(desc[0])
	}
	Define(name, on)
	Define("!"+name, Func(func() {
		flag.set = true
		flag.value = false
	}))
	Define(name+".", Func(func() {
		*flag = Flag{}
	}))
	return flag
}
