package sdk

import "strings"

type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type AddressType string

const (
	AddressTypeEVM     AddressType = "evm"
	AddressTypeKey     AddressType = "key"
	AddressTypeHive    AddressType = "hive"
	AddressTypeSystem  AddressType = "system"
	AddressTypeUnknown AddressType = "unknown"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
func (a Address) String() string {
	return string(a)
}

// Domain checks the prefix to classify the address as user/contract/system.
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// Type inspects the DID prefix to categorize the address (evm, key, hive,...).
func (a Address) Type() AddressType {
	if strings.HasPrefix(a.String(), "did:pkh:eip155") {
		return AddressTypeEVM
	} else if strings.HasPrefix(a.String(), "did:key:") {
		return AddressTypeKey
	} else if strings.HasPrefix(a.String(), "hive:") {
		return AddressTypeHive
	} else if strings.HasPrefix(a.String(), "system:") {
		return AddressTypeSystem
	} else {
		return AddressTypeUnknown
	}
}

// IsValid returns false if the address type detection failed, used as a light sanity check.
func (a Address) IsValid() bool {
	return a.Type() != AddressTypeUnknown
}
