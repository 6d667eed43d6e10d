package nodem_test

import (
	"fmt"

	"github.com/doodlesbykumbi/nodem-in-go"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

func ExampleLoad() {
	m, err := nodem.Load()
	if err != nil {
		return
	}

	db := m.NewGtm()
	if res, _ := db.Open(); res.Failed() {
		fmt.Println("open failed:", res.ErrorMessage)
		return
	}
	defer db.Close()

	data := "hello"
	_, _ = db.Set(mumps.SetRequest{Node: mumps.Node{Global: "greeting", Subscripts: []string{"en"}}, Data: &data})
	res, _ := db.Get(mumps.Node{Global: "greeting", Subscripts: []string{"en"}})
	fmt.Println(res.Data)
}
