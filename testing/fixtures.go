package testing

import "github.com/arloliu/rota/types"

// SampleProfiles returns a small roster that covers every default role.
//
// The roster mixes adults and minors qualified for Audio and Video so that the
// pairing rule is exercised. A fresh slice is returned on every call.
func SampleProfiles() []types.Profile {
	return []types.Profile{
		{ID: "p-ana", Name: "Ana", Age: 34, Roles: []types.Role{types.RoleMicrophone, types.RoleAudio, types.RolePlatform}},
		{ID: "p-ben", Name: "Ben", Age: 16, Roles: []types.Role{types.RoleAudio, types.RoleVideo}},
		{ID: "p-cruz", Name: "Cruz", Age: 15, Roles: []types.Role{types.RoleAudio, types.RoleVideo, types.RoleMicrophone}},
		{ID: "p-dora", Name: "Dora", Age: 52, Roles: []types.Role{types.RoleVideo, types.RolePlatform}},
		{ID: "p-eli", Name: "Eli", Age: 17, Roles: []types.Role{types.RoleMicrophone, types.RolePlatform}},
		{ID: "p-fer", Name: "Fer", Age: 41, Roles: []types.Role{types.RoleMicrophone, types.RoleAudio, types.RoleVideo, types.RolePlatform}},
		{ID: "p-gil", Name: "Gil", Age: 14, Roles: []types.Role{types.RoleVideo, types.RoleAudio}},
	}
}
