//go:build !linux && !darwin && !windows

package platform

func (service *platformService) EnableAutostart(string, string) error {
	return ErrUnsupported
}

func (service *platformService) DisableAutostart(string) error {
	return ErrUnsupported
}
