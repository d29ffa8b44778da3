package bip32

// Network selects which of {MainNet, TestNet} a key belongs to.
type Network int

const (
	MainNet Network = iota
	TestNet
)

// KeyKind distinguishes private from public extended keys.
type KeyKind int

const (
	PrivateKind KeyKind = iota
	PublicKind
)

// Version is the 4-byte big-endian prefix identifying
// {MainNet,TestNet}x{Private,Public}.
type Version uint32

const (
	MainNetPrivate Version = 0x0488ADE4
	MainNetPublic  Version = 0x0488B21E
	TestNetPrivate Version = 0x04358394
	TestNetPublic  Version = 0x043587CF
)

func versionFor(network Network, kind KeyKind) Version {
	switch {
	case network == MainNet && kind == PrivateKind:
		return MainNetPrivate
	case network == MainNet && kind == PublicKind:
		return MainNetPublic
	case network == TestNet && kind == PrivateKind:
		return TestNetPrivate
	default:
		return TestNetPublic
	}
}

func (v Version) kind() KeyKind {
	if v == MainNetPrivate || v == TestNetPrivate {
		return PrivateKind
	}
	return PublicKind
}

func (v Version) network() Network {
	if v == MainNetPrivate || v == MainNetPublic {
		return MainNet
	}
	return TestNet
}

// Base58Prefix returns the 4-character Base58Check prefix a serialized
// key of this version produces ("xprv", "xpub", "tprv", "tpub").
func (v Version) Base58Prefix() string {
	switch v {
	case MainNetPrivate:
		return "xprv"
	case MainNetPublic:
		return "xpub"
	case TestNetPrivate:
		return "tprv"
	case TestNetPublic:
		return "tpub"
	default:
		return "????"
	}
}
