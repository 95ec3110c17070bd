// Package guard gates access to sensitive city resources by role.
//
// A Guard wraps one Resource and a fixed allowlist of roles. Every request is
// evaluated against an embedded Cedar policy: the resource entity carries its
// allowlist as the allowed_roles attribute and the policy permits the request
// action when the principal's role is a member.
//
// # Behavior
//
//   - Allowed requests are forwarded to the resource unchanged.
//   - Denied requests are answered by the guard with an "access limited"
//     message that includes the resource's non-sensitive status.
//   - Status reads are never gated.
//
// Denial is a normal outcome, not an error. Every decision is logged with
// structured fields (role, resource, decision, policy, duration) and counted
// when a metrics recorder is configured.
//
// # Thread Safety
//
// The policy set and allowlist are immutable after New. Serializing access to
// the wrapped resource is the caller's responsibility.
package guard
