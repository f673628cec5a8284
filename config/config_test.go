package config

import (
	"testing"

	"github.com/anisan-cli/lifo/filesystem"
	"github.com/anisan-cli/lifo/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name, field := range Default {
				So(viper.Get(name), ShouldResemble, field.Value)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("mini.show_len"), ShouldEqual, "mini_show_len")
		})

		Convey("Should read overrides from the environment", func() {
			t.Setenv("LIFO_MINI_PROMPT", "$ ")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.MiniPrompt), ShouldEqual, "$ ")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env should be prefixed and upper-cased", func() {
			f := Default[key.MiniShowLen]
			So(f.Env(), ShouldEqual, "LIFO_MINI_SHOW_LEN")
		})

		Convey("Parse should follow the default value type", func() {
			b := Default[key.MiniShowLen]
			v, err := b.Parse([]string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			_, err = b.Parse([]string{"nope"})
			So(err, ShouldNotBeNil)

			s := Default[key.MiniPrompt]
			v, err = s.Parse([]string{"$ "})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "$ ")

			_, err = s.Parse(nil)
			So(err, ShouldNotBeNil)
		})

		Convey("Pretty should mention the key", func() {
			f := Default[key.LogsLevel]
			So(f.Pretty(), ShouldContainSubstring, key.LogsLevel)
		})
	})
}
