package tizen

import "fmt"

type ApplicationInfo struct {
	ID   string
	Name string
}

func (info ApplicationInfo) String() string {
	return fmt.Sprintf("Application %v (%v)", info.ID, info.Name)
}
