package valuetype

import (
	"fmt"

	"github.com/quantfall/resolution/utils"
)

// Kind identifies the shape of an attribute's values. The engine's data model
// (see the model package) only cares that two values of the same Kind can be
// compared by their normalized form; it never inspects Kind itself beyond that.
//
// The base set required by the resolution engine is string, number, boolean,
// and date. The remaining kinds mirror the typed identifiers the source
// platform already validates elsewhere (IPs, hashes, FQDNs, ...) so a model
// built against richer attribute types than the bare minimum still resolves
// correctly.
type Kind string

const (
	KindString      Kind = "string"
	KindNumber      Kind = "number"
	KindInteger     Kind = "integer"
	KindBoolean     Kind = "boolean"
	KindDate        Kind = "date"
	KindDatetime    Kind = "datetime"
	KindIP          Kind = "ip"
	KindCIDR        Kind = "cidr"
	KindMAC         Kind = "mac"
	KindEmail       Kind = "email"
	KindFQDN        Kind = "fqdn"
	KindURL         Kind = "url"
	KindPhone       Kind = "phone"
	KindPort        Kind = "port"
	KindPath        Kind = "path"
	KindMD5         Kind = "md5"
	KindSHA1        Kind = "sha1"
	KindSHA256      Kind = "sha256"
	KindSHA3256     Kind = "sha3-256"
	KindUUID        Kind = "uuid"
	KindHexadecimal Kind = "hexadecimal"
	KindBase64      Kind = "base64"
)

// Normalize validates raw against kind and returns the canonical value plus
// its SHA3-256 hash, the form every Validate* function in this package
// already produces. The model package keeps only the value, for equality
// and serialization; the hash is returned but not used there. Two values of the same
// Kind compare equal when their canonical values compare equal, never by
// comparing hashes or serialized JSON.
func Normalize(kind Kind, raw any) (value any, hash string, err error) {
	switch kind {
	case KindString:
		return ValidateString(utils.CastString(raw), false)
	case KindNumber:
		return ValidateFloat(utils.CastFloat64(raw))
	case KindInteger:
		return ValidateInteger(utils.CastInt64(raw))
	case KindBoolean:
		return ValidateBoolean(utils.CastBool(raw))
	case KindDate:
		return ValidateDate(utils.CastString(raw))
	case KindDatetime:
		return ValidateDatetime(utils.CastString(raw))
	case KindIP:
		return ValidateIP(utils.CastString(raw))
	case KindCIDR:
		return ValidateCIDR(utils.CastString(raw))
	case KindMAC:
		return ValidateMAC(utils.CastString(raw))
	case KindEmail:
		return ValidateEmail(utils.CastString(raw))
	case KindFQDN:
		return ValidateFQDN(utils.CastString(raw))
	case KindURL:
		return ValidateURL(utils.CastString(raw))
	case KindPhone:
		return ValidatePhone(utils.CastString(raw))
	case KindPort:
		return ValidatePort(utils.CastString(raw))
	case KindPath:
		return ValidatePath(utils.CastString(raw))
	case KindMD5:
		return ValidateMD5(utils.CastString(raw))
	case KindSHA1:
		return ValidateSHA1(utils.CastString(raw))
	case KindSHA256:
		return ValidateSHA256(utils.CastString(raw))
	case KindSHA3256:
		return ValidateSHA3256(utils.CastString(raw))
	case KindUUID:
		u, h, err := ValidateUUID(utils.CastString(raw))
		return u.String(), h, err
	case KindHexadecimal:
		return ValidateHexadecimal(utils.CastString(raw))
	case KindBase64:
		return ValidateBase64(utils.CastString(raw))
	default:
		return nil, "", fmt.Errorf("unknown attribute kind: %s", kind)
	}
}
